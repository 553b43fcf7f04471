package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyLicense(t *testing.T) {
	cases := []struct {
		license string
		want    LicenseCategory
	}{
		{"Kantonslizenz", CantonalLicense},
		{"Kantonale Lizenz (Volksschulamt)", CantonalLicense},
		{"BBW-Schullizenz", SchoolLicense},
		{"BBW (LP)", SchoolLicense},
		{"Hardware BBW", SchoolLicense},
		{"BBW-Schullizenz begrenzt (24 Lizenzen)", LimitedSchoolLicense},
		{"Einzellizenz BBW", IndividualLicense},
		{"Einzellizenz (Kanton bezahlt)", IndividualLicense},
		{"Kostenlos", FreeLicense},
		{"kostenlos (Basisversion), Schullizenz optional", FreeLicense},
		{"Lizenz über Lehrmittelverlag", LicenseCategory("Lizenz über Lehrmittelverlag")},
		{"", LicenseCategory("")},
	}
	for _, tc := range cases {
		t.Run(tc.license, func(t *testing.T) {
			assert.Equal(t, tc.want, ClassifyLicense(tc.license))
			assert.Equal(t, tc.want, ClassifyLicense(tc.license), "classification must be deterministic")
		})
	}
}

func TestLicenseCategories(t *testing.T) {
	cats := LicenseCategories()
	assert.Equal(t, []LicenseCategory{CantonalLicense, SchoolLicense, LimitedSchoolLicense, IndividualLicense, FreeLicense}, cats)

	cats[0] = "changed"
	assert.Equal(t, CantonalLicense, LicenseCategories()[0])

	assert.True(t, FreeLicense.Known())
	assert.False(t, LicenseCategory("Lizenz über Lehrmittelverlag").Known())
}
