package utils

import (
	"blacktie/src/config"
	"fmt"
	"log"
	"math"
	"path"
	"time"

	"github.com/gosimple/slug"
	"github.com/yeqown/go-qrcode"
)

// ToMinorUnits converts a whole-currency decimal amount (the shape every
// resource except payment intents uses on the wire) into minor units for
// the payment gateway. Rounded half away from zero.
func ToMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// FromMinorUnits converts a gateway amount back into a whole-currency
// decimal.
func FromMinorUnits(amount int64) float64 {
	return float64(amount) / 100
}

// MakeListingSlug derives the URL slug for a new garment listing.
func MakeListingSlug(name string) string {
	return slug.Make(name)
}

// SaveDeliveryCodeQR renders a booking's delivery code as a QR image under
// the temp dir and returns the file path.
func SaveDeliveryCodeQR(bookingID uint, code string) (string, error) {
	qrc, err := qrcode.New(code)
	if err != nil {
		return "", err
	}
	filename := fmt.Sprintf("delivery_%d", bookingID)
	filepath := path.Join(config.TempDir(), fmt.Sprintf("%s.jpeg", filename))
	if err = qrc.Save(filepath); err != nil {
		log.Printf("Could not save qrcode to file [%s]: %s\n", filepath, err.Error())
		return "", err
	}
	return filepath, nil
}

// ParseWireDate parses a request-body date string in the wire format.
func ParseWireDate(s string) (time.Time, error) {
	return time.Parse(config.TIME_PARSE_FORMAT, s)
}
