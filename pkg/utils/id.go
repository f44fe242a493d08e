package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	idLength   = 10
)

// HotelIDPrefix identifica os IDs de hotéis cadastrados
const HotelIDPrefix = "htl"

// GenerateID gera um identificador curto, minúsculo e com prefixo do tipo (ex.: htl_3k9x0a1b2c)
func GenerateID(prefix string) (string, error) {
	id, err := gonanoid.Generate(idAlphabet, idLength)
	if err != nil {
		return "", err
	}
	if prefix == "" {
		return id, nil
	}
	return prefix + "_" + id, nil
}
