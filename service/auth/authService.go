package authsvc

import (
	"crypto/subtle"
	"errors"

	jwtutil "github.com/shubhranshu-pandey/Lost-and-Found/util/jwt"
)

var ErrInvalidCreds = errors.New("invalid credentials")

// Service checks the configured demo moderator credential and issues a
// session token. This is portal plumbing, not a security boundary.
type Service interface {
	Login(username, password string) (string, error)
}

type service struct {
	username string
	password string
	secret   string
}

func New(username, password, secret string) Service {
	return &service{username: username, password: password, secret: secret}
}

func (s *service) Login(username, password string) (string, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.password)) == 1
	if !userOK || !passOK {
		return "", ErrInvalidCreds
	}
	return jwtutil.Issue(s.secret, s.username, "moderator", 24)
}
