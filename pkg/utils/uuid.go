package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 8)
}

// GenerateInvoiceNumber is used when an ingested invoice reference carries no number.
func GenerateInvoiceNumber() (string, error) {
	id, err := GenerateID()
	if err != nil {
		return "", err
	}
	return "INV-" + id, nil
}
