package service

import (
	"fmt"
	"strings"

	"github.com/skip2/go-qrcode"
)

type QRGenerator interface {
	Generate(reservationID int) ([]byte, error)
}

type DefaultQRGenerator struct {
	BaseURL string
}

func (g DefaultQRGenerator) Generate(reservationID int) ([]byte, error) {
	qrData := fmt.Sprintf("%s/api/reservations/%d", strings.TrimRight(g.BaseURL, "/"), reservationID)
	return qrcode.Encode(qrData, qrcode.Medium, 256)
}
