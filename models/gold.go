// models/gold.go
package models

import "time"

// DriverPerformance is the per-driver rollup in gold.driver_performance.
// TotalFare and AvgFare follow SQL aggregate semantics: nil when the driver
// has no non-null fares at all, otherwise the sum/mean of non-null fares.
// TripsCount counts every trip, fare or no fare.
type DriverPerformance struct {
	DriverID    string   `csv:"driver_id" db:"driver_id"`
	DriverName  string   `csv:"driver_name" db:"driver_name"`
	VehicleType string   `csv:"vehicle_type" db:"vehicle_type"`
	TripsCount  int64    `csv:"trips_count" db:"trips_count"`
	TotalFare   *float64 `csv:"total_fare" db:"total_fare"`
	AvgFare     *float64 `csv:"avg_fare" db:"avg_fare"`
}

// RoutePerformance is the per-(pickup, drop) rollup in gold.route_performance.
type RoutePerformance struct {
	PickupLocation string   `csv:"pickup_location" db:"pickup_location"`
	DropLocation   string   `csv:"drop_location" db:"drop_location"`
	TripsCount     int64    `csv:"trips_count" db:"trips_count"`
	TotalFare      *float64 `csv:"total_fare" db:"total_fare"`
	AvgFare        *float64 `csv:"avg_fare" db:"avg_fare"`
}

// FactTrip is one row of gold.fact_trips_dashboard: a trip left-joined to its
// customer, driver and (zero-or-one) payment.
//
// FareMatches is null-propagating: nil when the trip has no payment or when
// either fare is null, because there is no comparison operand. It is never
// forced to false for an absent payment.
type FactTrip struct {
	TripID         string     `csv:"trip_id" db:"trip_id"`
	CustomerID     string     `csv:"customer_id" db:"customer_id"`
	CustomerName   string     `csv:"customer_name" db:"customer_name"`
	SignupDate     *time.Time `csv:"signup_date" db:"signup_date"`
	SignupMonth    *time.Time `csv:"signup_month" db:"signup_month"`
	DriverID       string     `csv:"driver_id" db:"driver_id"`
	DriverName     string     `csv:"driver_name" db:"driver_name"`
	VehicleType    string     `csv:"vehicle_type" db:"vehicle_type"`
	PickupLocation string     `csv:"pickup_location" db:"pickup_location"`
	DropLocation   string     `csv:"drop_location" db:"drop_location"`
	TripFare       *float64   `csv:"trip_fare" db:"trip_fare"`
	PaidFare       *float64   `csv:"paid_fare" db:"paid_fare"`
	ModeOfPayment  string     `csv:"mode_of_payment" db:"mode_of_payment"`
	FareMatches    *bool      `csv:"fare_matches" db:"fare_matches"`
}

// UnknownPaymentMode is the sentinel written to mode_of_payment for trips
// without a payment row.
const UnknownPaymentMode = "Unknown"
