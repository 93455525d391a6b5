package service

import (
	"errors"

	"github.com/skip2/go-qrcode"
)

var ErrNoReceipt = errors.New("no receipt displayed")

type DefaultQRGenerator struct {
	Size int
}

func (g DefaultQRGenerator) Generate(text string) ([]byte, error) {
	if text == "" {
		return nil, ErrNoReceipt
	}
	size := g.Size
	if size <= 0 {
		size = 256
	}
	return qrcode.Encode(text, qrcode.Medium, size)
}

var _ QRGenerator = DefaultQRGenerator{}
