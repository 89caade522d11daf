package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// UniqueFileName devolve "<prefix>_<id><ext>" com um id aleatório de 6 caracteres.
func UniqueFileName(prefix, ext string) (string, error) {
	id, err := gonanoid.Generate(characters, 6)
	if err != nil {
		return "", err
	}
	return prefix + "_" + id + ext, nil
}
