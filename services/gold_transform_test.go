package services

import (
	"testing"

	"github.com/avelark/ridelake/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func silverFixture() ([]models.Customer, []models.Driver, []models.Trip, []models.Payment) {
	customers := []models.Customer{
		{CustomerID: "C1", CustomerName: "Alice", SignupDate: date("2024-01-10")},
	}
	drivers := []models.Driver{
		{DriverID: "D1", DriverName: "Bob", VehicleType: "Sedan"},
	}
	trips := []models.Trip{
		{TripID: "T1", CustomerID: "C1", DriverID: "D1", PickupLocation: "A", DropLocation: "B", TripFare: fare(100.0)},
	}
	payments := []models.Payment{
		{PaymentID: "P1", TripID: "T1", TripFare: fare(100.0), ModeOfPayment: "Card"},
	}
	return customers, drivers, trips, payments
}

func TestBuildDriverPerformanceSingleTrip(t *testing.T) {
	_, drivers, trips, _ := silverFixture()

	perf := BuildDriverPerformance(trips, drivers)

	require.Len(t, perf, 1)
	assert.Equal(t, models.DriverPerformance{
		DriverID:    "D1",
		DriverName:  "Bob",
		VehicleType: "Sedan",
		TripsCount:  1,
		TotalFare:   fare(100.0),
		AvgFare:     fare(100.0),
	}, perf[0])
}

func TestBuildDriverPerformanceNullFareSemantics(t *testing.T) {
	drivers := []models.Driver{
		{DriverID: "D1", DriverName: "Bob", VehicleType: "Sedan"},
		{DriverID: "D2", DriverName: "Eve", VehicleType: "SUV"},
		{DriverID: "D3", DriverName: "Idle", VehicleType: "Mini"},
	}
	trips := []models.Trip{
		{TripID: "T1", DriverID: "D1", TripFare: fare(10)},
		{TripID: "T2", DriverID: "D1", TripFare: nil}, // counts toward trips, not fares
		{TripID: "T3", DriverID: "D1", TripFare: fare(30)},
		{TripID: "T4", DriverID: "D2", TripFare: nil}, // only null fares
	}

	perf := BuildDriverPerformance(trips, drivers)

	// D3 has no trips and must not appear; output is ordered by driver_id.
	require.Len(t, perf, 2)
	assert.Equal(t, "D1", perf[0].DriverID)
	assert.Equal(t, int64(3), perf[0].TripsCount)
	assert.Equal(t, fare(40), perf[0].TotalFare)
	assert.Equal(t, fare(20), perf[0].AvgFare)

	assert.Equal(t, "D2", perf[1].DriverID)
	assert.Equal(t, int64(1), perf[1].TripsCount)
	assert.Nil(t, perf[1].TotalFare)
	assert.Nil(t, perf[1].AvgFare)
}

func TestBuildRoutePerformanceGroupsAndOrders(t *testing.T) {
	trips := []models.Trip{
		{TripID: "T1", PickupLocation: "B", DropLocation: "C", TripFare: fare(5)},
		{TripID: "T2", PickupLocation: "A", DropLocation: "B", TripFare: fare(10)},
		{TripID: "T3", PickupLocation: "A", DropLocation: "B", TripFare: fare(20)},
		{TripID: "T4", PickupLocation: "A", DropLocation: "C", TripFare: nil},
	}

	perf := BuildRoutePerformance(trips)

	require.Len(t, perf, 3)
	assert.Equal(t, models.RoutePerformance{
		PickupLocation: "A", DropLocation: "B", TripsCount: 2, TotalFare: fare(30), AvgFare: fare(15),
	}, perf[0])
	assert.Equal(t, "C", perf[1].DropLocation)
	assert.Nil(t, perf[1].TotalFare)
	assert.Equal(t, "B", perf[2].PickupLocation)
}

func TestBuildFactTripsJoinedRow(t *testing.T) {
	customers, drivers, trips, payments := silverFixture()

	facts := BuildFactTrips(trips, customers, drivers, payments)

	require.Len(t, facts, 1)
	f := facts[0]
	assert.Equal(t, "T1", f.TripID)
	assert.Equal(t, "Alice", f.CustomerName)
	assert.Equal(t, date("2024-01-10"), f.SignupDate)
	assert.Equal(t, date("2024-01-01"), f.SignupMonth)
	assert.Equal(t, "Bob", f.DriverName)
	assert.Equal(t, "Card", f.ModeOfPayment)
	assert.Equal(t, fare(100.0), f.PaidFare)
	require.NotNil(t, f.FareMatches)
	assert.True(t, *f.FareMatches)
}

func TestBuildFactTripsNoPayment(t *testing.T) {
	customers, drivers, trips, _ := silverFixture()

	facts := BuildFactTrips(trips, customers, drivers, nil)

	require.Len(t, facts, 1)
	f := facts[0]
	assert.Equal(t, models.UnknownPaymentMode, f.ModeOfPayment)
	assert.Nil(t, f.PaidFare)
	// No payment means no comparison operand: fare_matches stays null.
	assert.Nil(t, f.FareMatches)
}

func TestBuildFactTripsFareMismatchAndNullOperands(t *testing.T) {
	customers, drivers, trips, payments := silverFixture()
	payments[0].TripFare = fare(90.0)

	facts := BuildFactTrips(trips, customers, drivers, payments)
	require.NotNil(t, facts[0].FareMatches)
	assert.False(t, *facts[0].FareMatches)

	payments[0].TripFare = nil
	facts = BuildFactTrips(trips, customers, drivers, payments)
	assert.Nil(t, facts[0].FareMatches)

	payments[0].TripFare = fare(90.0)
	trips[0].TripFare = nil
	facts = BuildFactTrips(trips, customers, drivers, payments)
	assert.Nil(t, facts[0].FareMatches)
}

func TestBuildFactTripsNullSignupDate(t *testing.T) {
	customers, drivers, trips, payments := silverFixture()
	customers[0].SignupDate = nil

	facts := BuildFactTrips(trips, customers, drivers, payments)

	assert.Nil(t, facts[0].SignupDate)
	assert.Nil(t, facts[0].SignupMonth)
}

func TestBuildFactTripsPreservesTripOrder(t *testing.T) {
	customers := []models.Customer{{CustomerID: "C1", CustomerName: "Alice"}}
	drivers := []models.Driver{{DriverID: "D1", DriverName: "Bob", VehicleType: "Sedan"}}
	trips := []models.Trip{
		{TripID: "T3", CustomerID: "C1", DriverID: "D1"},
		{TripID: "T1", CustomerID: "C1", DriverID: "D1"},
		{TripID: "T2", CustomerID: "C1", DriverID: "D1"},
	}

	facts := BuildFactTrips(trips, customers, drivers, nil)

	require.Len(t, facts, 3)
	assert.Equal(t, "T3", facts[0].TripID)
	assert.Equal(t, "T1", facts[1].TripID)
	assert.Equal(t, "T2", facts[2].TripID)
}
