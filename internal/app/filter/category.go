package filter

import (
	"slices"
	"strings"
)

// LicenseCategory is the canonical license bucket a tool's free-text license falls into.
type LicenseCategory string

const (
	CantonalLicense      LicenseCategory = "Kantonslizenz"
	SchoolLicense        LicenseCategory = "BBW-Schullizenz"
	LimitedSchoolLicense LicenseCategory = "BBW-Schullizenz begrenzt"
	IndividualLicense    LicenseCategory = "Einzellizenz BBW"
	FreeLicense          LicenseCategory = "Kostenlos"
)

// display order of the selector
var licenseCategories = []LicenseCategory{
	CantonalLicense,
	SchoolLicense,
	LimitedSchoolLicense,
	IndividualLicense,
	FreeLicense,
}

// LicenseCategories returns the five canonical categories in display order.
func LicenseCategories() []LicenseCategory {
	return slices.Clone(licenseCategories)
}

// Known reports whether c is one of the canonical categories.
func (c LicenseCategory) Known() bool {
	return slices.Contains(licenseCategories, c)
}

// ClassifyLicense maps a free-text license description onto a category.
// More specific markers are checked first, so "BBW-Schullizenz begrenzt" never lands
// in the plain school license bucket. Descriptions matching no marker are returned
// unchanged.
func ClassifyLicense(license string) LicenseCategory {
	l := strings.ToLower(license)
	switch {
	case strings.Contains(l, "kostenlos"):
		return FreeLicense
	case strings.Contains(l, "einzellizenz"):
		return IndividualLicense
	case strings.Contains(l, "begrenzt"):
		return LimitedSchoolLicense
	case strings.Contains(l, "schullizenz"),
		strings.Contains(l, "bbw (lp)"),
		strings.Contains(l, "hardware"):
		return SchoolLicense
	case strings.Contains(l, "kanton"):
		return CantonalLicense
	default:
		return LicenseCategory(license)
	}
}
