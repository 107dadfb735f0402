// Package repository is the gorm backed record store for attractions and locations.
package repository

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

var ErrRecordNotFound = errors.New("record not found")

func wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrRecordNotFound
	}
	return errors.Wrap(err, msg)
}

func orderedServices(tx *gorm.DB) *gorm.DB {
	return tx.Order("services.id")
}
