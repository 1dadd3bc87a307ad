package services

import (
	"testing"
	"time"

	"github.com/avelark/ridelake/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) *time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &t
}

func fare(f float64) *float64 { return &f }

func cleanFixture() ([]models.RawCustomer, []models.RawDriver, []models.RawTrip, []models.RawPayment) {
	customers := []models.RawCustomer{
		{CustomerID: "C1", CustomerName: "Alice", SignupDate: "2024-01-10"},
	}
	drivers := []models.RawDriver{
		{DriverID: "D1", DriverName: "Bob", VehicleType: "Sedan"},
	}
	trips := []models.RawTrip{
		{TripID: "T1", CustomerID: "C1", DriverID: "D1", PickupLocation: "A", DropLocation: "B", TripFare: "100.0"},
	}
	payments := []models.RawPayment{
		{PaymentID: "P1", TripID: "T1", TripFare: "100.0", ModeOfPayment: "Card"},
	}
	return customers, drivers, trips, payments
}

func TestBuildSilverRetainsCleanRows(t *testing.T) {
	customers, drivers, trips, payments := cleanFixture()
	result := BuildSilver(customers, drivers, trips, payments)

	require.Len(t, result.Customers, 1)
	require.Len(t, result.Drivers, 1)
	require.Len(t, result.Trips, 1)
	require.Len(t, result.Payments, 1)

	assert.Equal(t, "C1", result.Customers[0].CustomerID)
	assert.Equal(t, date("2024-01-10"), result.Customers[0].SignupDate)
	assert.Equal(t, fare(100.0), result.Trips[0].TripFare)
	assert.Equal(t, fare(100.0), result.Payments[0].TripFare)

	assert.Equal(t, QualityCounts{}, result.Quality)
}

func TestBuildSilverInvalidVehicleTypeCascades(t *testing.T) {
	customers, drivers, trips, payments := cleanFixture()
	drivers[0].VehicleType = "Van"

	result := BuildSilver(customers, drivers, trips, payments)

	// D1 dropped, so T1 is orphaned, so P1 is orphaned.
	assert.Len(t, result.Customers, 1)
	assert.Empty(t, result.Drivers)
	assert.Empty(t, result.Trips)
	assert.Empty(t, result.Payments)
}

func TestBuildSilverDedupFirstRowWins(t *testing.T) {
	customers := []models.RawCustomer{
		{CustomerID: "C1", CustomerName: "Alice", SignupDate: "2024-01-10"},
		{CustomerID: "C2", CustomerName: "Carol", SignupDate: "2024-02-01"},
		{CustomerID: "C1", CustomerName: "Impostor", SignupDate: "2030-01-01"},
		{CustomerID: "C2", CustomerName: "Carol", SignupDate: "2024-02-01"},
	}
	result := BuildSilver(customers, nil, nil, nil)

	require.Len(t, result.Customers, 2)
	assert.Equal(t, "Alice", result.Customers[0].CustomerName)
	assert.Equal(t, "C2", result.Customers[1].CustomerID)
	assert.Equal(t, date("2024-01-10"), result.Customers[0].SignupDate)
}

func TestBuildSilverCoercionFailuresBecomeNil(t *testing.T) {
	customers := []models.RawCustomer{
		{CustomerID: "C1", CustomerName: "Alice", SignupDate: "not-a-date"},
	}
	drivers := []models.RawDriver{
		{DriverID: "D1", DriverName: "Bob", VehicleType: "SUV"},
	}
	trips := []models.RawTrip{
		{TripID: "T1", CustomerID: "C1", DriverID: "D1", PickupLocation: "A", DropLocation: "B", TripFare: "abc"},
		{TripID: "T2", CustomerID: "C1", DriverID: "D1", PickupLocation: "A", DropLocation: "B", TripFare: ""},
		{TripID: "T3", CustomerID: "C1", DriverID: "D1", PickupLocation: "A", DropLocation: "B", TripFare: " 42.5 "},
	}
	payments := []models.RawPayment{
		{PaymentID: "P1", TripID: "T1", TripFare: "??", ModeOfPayment: "Cash"},
	}

	result := BuildSilver(customers, drivers, trips, payments)

	require.Len(t, result.Trips, 3)
	assert.Nil(t, result.Customers[0].SignupDate)
	assert.Nil(t, result.Trips[0].TripFare)
	assert.Nil(t, result.Trips[1].TripFare)
	assert.Equal(t, fare(42.5), result.Trips[2].TripFare)
	assert.Nil(t, result.Payments[0].TripFare)

	// Missing signup date counts as a missing customer cell; the two
	// unparseable trip fares and the payment fare show up as invalid.
	assert.Equal(t, int64(1), result.Quality.MissingCustomers)
	assert.Equal(t, int64(0), result.Quality.MissingDrivers)
	assert.Equal(t, int64(2), result.Quality.InvalidTripFares)
	assert.Equal(t, int64(1), result.Quality.InvalidPaymentFares)
}

func TestBuildSilverTripFKFilters(t *testing.T) {
	customers, drivers, _, _ := cleanFixture()
	trips := []models.RawTrip{
		{TripID: "T1", CustomerID: "C1", DriverID: "D1", TripFare: "10"},
		{TripID: "T2", CustomerID: "C404", DriverID: "D1", TripFare: "10"}, // unknown customer
		{TripID: "T3", CustomerID: "C1", DriverID: "D404", TripFare: "10"}, // unknown driver
	}
	payments := []models.RawPayment{
		{PaymentID: "P1", TripID: "T1", TripFare: "10", ModeOfPayment: "Card"},
		{PaymentID: "P2", TripID: "T2", TripFare: "10", ModeOfPayment: "Card"}, // trip dropped above
		{PaymentID: "P3", TripID: "T404", TripFare: "10", ModeOfPayment: "Card"},
	}

	result := BuildSilver(customers, drivers, trips, payments)

	require.Len(t, result.Trips, 1)
	assert.Equal(t, "T1", result.Trips[0].TripID)
	require.Len(t, result.Payments, 1)
	assert.Equal(t, "P1", result.Payments[0].PaymentID)
}

func TestBuildSilverMissingValueCounts(t *testing.T) {
	customers := []models.RawCustomer{
		{CustomerID: "C1", CustomerName: "", SignupDate: ""},
		{CustomerID: "", CustomerName: "Ghost", SignupDate: "2024-05-05"},
	}
	drivers := []models.RawDriver{
		{DriverID: "D1", DriverName: "", VehicleType: "Mini"},
	}

	result := BuildSilver(customers, drivers, nil, nil)

	// C1: name + date missing; second row: id missing.
	assert.Equal(t, int64(3), result.Quality.MissingCustomers)
	assert.Equal(t, int64(1), result.Quality.MissingDrivers)
}

func TestBuildSilverIsIdempotent(t *testing.T) {
	customers := []models.RawCustomer{
		{CustomerID: "C1", CustomerName: "Alice", SignupDate: "2024-01-10"},
		{CustomerID: "C1", CustomerName: "Dup", SignupDate: "bogus"},
		{CustomerID: "C2", CustomerName: "Carol", SignupDate: ""},
	}
	drivers := []models.RawDriver{
		{DriverID: "D1", DriverName: "Bob", VehicleType: "Sedan"},
		{DriverID: "D2", DriverName: "Eve", VehicleType: "Tuk-tuk"},
	}
	trips := []models.RawTrip{
		{TripID: "T1", CustomerID: "C1", DriverID: "D1", TripFare: "12.5"},
		{TripID: "T2", CustomerID: "C2", DriverID: "D2", TripFare: "99"},
	}
	payments := []models.RawPayment{
		{PaymentID: "P1", TripID: "T1", TripFare: "12.5", ModeOfPayment: "Cash"},
	}

	first := BuildSilver(customers, drivers, trips, payments)
	second := BuildSilver(customers, drivers, trips, payments)

	assert.Equal(t, first, second)
}

func TestParseDateLayouts(t *testing.T) {
	assert.Equal(t, date("2024-01-10"), parseDate("2024-01-10"))
	assert.Equal(t, date("2024-01-10"), parseDate("2024/01/10"))
	assert.Nil(t, parseDate(""))
	assert.Nil(t, parseDate("10th of January"))
}
