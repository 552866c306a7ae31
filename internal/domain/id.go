package domain

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrMalformedID marks a reference string that cannot possibly name a
// stored record. A well-formed ID that matches nothing is a not-found
// condition instead, reported by the repository layer.
var ErrMalformedID = errors.New("malformed id")

type (
	NGOID         uint
	CampaignID    uint
	DonationID    uint
	TransactionID uint
	ReceiptID     uint
)

func (id NGOID) String() string         { return strconv.FormatUint(uint64(id), 10) }
func (id CampaignID) String() string    { return strconv.FormatUint(uint64(id), 10) }
func (id DonationID) String() string    { return strconv.FormatUint(uint64(id), 10) }
func (id TransactionID) String() string { return strconv.FormatUint(uint64(id), 10) }
func (id ReceiptID) String() string     { return strconv.FormatUint(uint64(id), 10) }

func ParseNGOID(s string) (NGOID, error) {
	v, err := parseID(s)
	if err != nil {
		return 0, fmt.Errorf("ngo id %q -> %w", s, err)
	}

	return NGOID(v), nil
}

func ParseCampaignID(s string) (CampaignID, error) {
	v, err := parseID(s)
	if err != nil {
		return 0, fmt.Errorf("campaign id %q -> %w", s, err)
	}

	return CampaignID(v), nil
}

func parseID(s string) (uint64, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil || v == 0 {
		return 0, ErrMalformedID
	}

	return v, nil
}
