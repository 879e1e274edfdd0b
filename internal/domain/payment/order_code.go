package payment

import (
	"crypto/rand"
	"math/big"
	"strconv"
	"time"

	"smartbus/internal/pkg/errs"
)

// OrderCode correlates a checkout session with its settlement callback.
type OrderCode int64

const orderCodeSuffixSpace = 100_000

var ErrInvalidOrderCode = errs.New("invalid order code")

// NewOrderCode combines unix seconds with a 5 digit crypto-random suffix.
// The result stays below 2^53 so gateways and browsers that treat it as
// a JSON number keep it exact.
func NewOrderCode(now time.Time) (OrderCode, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(orderCodeSuffixSpace))
	if err != nil {
		return 0, errs.Wrap(err, "generate order code suffix")
	}
	return OrderCode(now.Unix()*orderCodeSuffixSpace + n.Int64()), nil
}

func ParseOrderCode(s string) (OrderCode, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil || v <= 0 {
		return 0, ErrInvalidOrderCode
	}
	return OrderCode(v), nil
}

func (c OrderCode) Int64() int64   { return int64(c) }
func (c OrderCode) String() string { return strconv.FormatInt(int64(c), 10) }
