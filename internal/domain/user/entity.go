package user

import "strings"

// Rider is the purchasing account. Profiles are owned by the account
// service; this side only reads them to fill gateway buyer fields.
type Rider struct {
	id       int64
	fullName string
	email    Email
}

func NewRider(id int64, fullName, email string) (*Rider, error) {
	if id <= 0 {
		return nil, ErrInvalidUserID
	}
	r := &Rider{id: id, fullName: strings.TrimSpace(fullName)}
	// email is optional on legacy accounts
	if strings.TrimSpace(email) != "" {
		e, err := NewEmail(email)
		if err != nil {
			return nil, err
		}
		r.email = e
	}
	return r, nil
}

func (r *Rider) ID() int64        { return r.id }
func (r *Rider) FullName() string { return r.fullName }
func (r *Rider) Email() Email     { return r.email }

// BuyerName falls back to a neutral label for profiles without a name.
func (r *Rider) BuyerName() string {
	if r.fullName == "" {
		return "SmartBus rider"
	}
	return r.fullName
}
