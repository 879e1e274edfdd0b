//go:build unit

package commands_test

import (
	"testing"
	"time"

	"smartbus/internal/domain/fare"
	"smartbus/internal/domain/user"
	"smartbus/internal/pkg/clock"
	"smartbus/internal/pkg/config"
	"smartbus/tests/common/builder"
	"smartbus/tests/common/memstore"
	commandsmock "smartbus/tests/mock/commands"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const riderID int64 = 7

var fixedNow = time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)

type fixture struct {
	store   *memstore.Store
	gateway *commandsmock.MockPaymentGateway
	clock   *clock.MockClock
	cfg     config.Config
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	rider, err := user.NewRider(riderID, "Nguyen Van A", "rider@example.com")
	require.NoError(t, err)

	store := memstore.New().
		AddRoute("R01", "Route 01").
		AddRoute("R02", "Route 02").
		AddTicketType(builder.NewTicketTypeBuilder().WithID(1).WithName("Single ride").Counted(1).BuildDomain()).
		AddTicketType(builder.NewTicketTypeBuilder().WithID(2).WithName("Two rides").Counted(2).BuildDomain()).
		AddTicketType(builder.NewTicketTypeBuilder().WithID(3).WithName("Monthly").TimeWindow(30).BuildDomain()).
		AddRider(rider)
	store.SetPrice("R01", 1, fare.Money(10))
	store.SetPrice("R02", 1, fare.Money(15))
	store.SetPrice("R01", 2, fare.Money(18))
	store.SetPrice("R01", 3, fare.Money(200000))

	ctrl := gomock.NewController(t)
	return &fixture{
		store:   store,
		gateway: commandsmock.NewMockPaymentGateway(ctrl),
		clock:   clock.NewMockClock(fixedNow),
		cfg:     config.NewTestConfig(),
	}
}
