package config

import (
	"os"
	"strings"
)

// ZeroRateMode controls how an explicit zero CGST/SGST rate is handled.
// Legacy behavior treats zero the same as "not provided" and substitutes the
// default rate; explicit mode keeps the zero and suppresses the tax line.
type ZeroRateMode string

const (
	ZeroRateLegacy   ZeroRateMode = "legacy"
	ZeroRateExplicit ZeroRateMode = "explicit"
)

// OfficeAddress is one of the fixed office lines printed on every slip.
type OfficeAddress struct {
	City    string
	Address string
	Phone   string
}

// CompanyProfile carries the per-deployment constants printed on slips.
// Jurisdiction text, addresses and PAN vary by deployment, not per booking.
type CompanyProfile struct {
	Name         string
	PAN          string
	Jurisdiction string // verb phrase completed by the booking's start station
	Offices      []OfficeAddress
	ZeroRateMode ZeroRateMode
}

// DefaultCompanyProfile returns the Bharat Parcel Services head-office profile.
func DefaultCompanyProfile() CompanyProfile {
	return CompanyProfile{
		Name:         "BHARAT PARCEL SERVICES PVT.LTD.",
		PAN:          "AAECB6506F",
		Jurisdiction: "SUBJECT TO %s JURISDICTION",
		Offices: []OfficeAddress{
			{
				City:    "H.O. DELHI",
				Address: "332, Kucha Ghasi Ram, Chandni Chowk, Fatehpuri, Delhi -110006",
				Phone:   "011-45138699, 7779993453",
			},
			{
				City:    "MUMBAI",
				Address: "1, Malharrao Wadi, Gr. Flr., R. No. 4, D.A Lane Kalbadevi Rd., Mumbai-400002",
				Phone:   "022-49711975, 7779993454",
			},
		},
		ZeroRateMode: ZeroRateLegacy,
	}
}

// LoadCompanyProfile applies environment overrides on top of the defaults.
func LoadCompanyProfile() CompanyProfile {
	p := DefaultCompanyProfile()

	if v := strings.TrimSpace(os.Getenv("COMPANY_NAME")); v != "" {
		p.Name = v
	}
	if v := strings.TrimSpace(os.Getenv("COMPANY_PAN")); v != "" {
		p.PAN = v
	}
	if v := strings.TrimSpace(os.Getenv("GST_ZERO_RATE_MODE")); v != "" {
		switch ZeroRateMode(strings.ToLower(v)) {
		case ZeroRateExplicit:
			p.ZeroRateMode = ZeroRateExplicit
		default:
			p.ZeroRateMode = ZeroRateLegacy
		}
	}

	return p
}
