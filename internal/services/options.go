package services

import (
	"strconv"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Option customises a service.
type Option func(*options)

type options struct {
	now        func() time.Time
	bcryptCost int
}

func newOptions(opts []Option) options {
	o := options{
		now:        time.Now,
		bcryptCost: bcrypt.DefaultCost,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithClock replaces the time source used for ids and timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// WithBcryptCost sets the cost used when hashing passwords.
func WithBcryptCost(cost int) Option {
	return func(o *options) {
		o.bcryptCost = cost
	}
}

// newID formats the creation time in milliseconds. Two entities created in
// the same millisecond get the same id.
func newID(now time.Time) string {
	return strconv.FormatInt(now.UnixMilli(), 10)
}

func hashPassword(password string, cost int) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}
