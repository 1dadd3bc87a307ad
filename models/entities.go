// models/entities.go
package models

import "time"

// Raw* structs mirror the source extracts column-for-column. Every field is a
// string: bronze staging keeps whatever the file contained, typing happens in
// the silver build. CSV tags must EXACTLY match the extract headers.

type RawCustomer struct {
	CustomerID   string `csv:"customer_id" db:"customer_id"`
	CustomerName string `csv:"customer_name" db:"customer_name"`
	SignupDate   string `csv:"signup_date" db:"signup_date"`
}

type RawDriver struct {
	DriverID    string `csv:"driver_id" db:"driver_id"`
	DriverName  string `csv:"driver_name" db:"driver_name"`
	VehicleType string `csv:"vehicle_type" db:"vehicle_type"`
}

type RawTrip struct {
	TripID         string `csv:"trip_id" db:"trip_id"`
	CustomerID     string `csv:"customer_id" db:"customer_id"`
	DriverID       string `csv:"driver_id" db:"driver_id"`
	PickupLocation string `csv:"pickup_location" db:"pickup_location"`
	DropLocation   string `csv:"drop_location" db:"drop_location"`
	TripFare       string `csv:"trip_fare" db:"trip_fare"`
}

type RawPayment struct {
	PaymentID     string `csv:"payment_id" db:"payment_id"`
	TripID        string `csv:"trip_id" db:"trip_id"`
	TripFare      string `csv:"trip_fare" db:"trip_fare"`
	ModeOfPayment string `csv:"mode_of_payment" db:"mode_of_payment"`
}

// Cleaned silver-layer rows. Pointer fields are nullable: a coercion failure
// becomes nil, never an error.

type Customer struct {
	CustomerID   string     `csv:"customer_id" db:"customer_id"`
	CustomerName string     `csv:"customer_name" db:"customer_name"`
	SignupDate   *time.Time `csv:"signup_date" db:"signup_date"`
}

type Driver struct {
	DriverID    string `csv:"driver_id" db:"driver_id"`
	DriverName  string `csv:"driver_name" db:"driver_name"`
	VehicleType string `csv:"vehicle_type" db:"vehicle_type"`
}

type Trip struct {
	TripID         string   `csv:"trip_id" db:"trip_id"`
	CustomerID     string   `csv:"customer_id" db:"customer_id"`
	DriverID       string   `csv:"driver_id" db:"driver_id"`
	PickupLocation string   `csv:"pickup_location" db:"pickup_location"`
	DropLocation   string   `csv:"drop_location" db:"drop_location"`
	TripFare       *float64 `csv:"trip_fare" db:"trip_fare"`
}

type Payment struct {
	PaymentID     string   `csv:"payment_id" db:"payment_id"`
	TripID        string   `csv:"trip_id" db:"trip_id"`
	TripFare      *float64 `csv:"trip_fare" db:"trip_fare"`
	ModeOfPayment string   `csv:"mode_of_payment" db:"mode_of_payment"`
}

// ValidVehicleTypes is the accepted vehicle_type enumeration. Drivers outside
// it are dropped from silver, along with their trips and those trips' payments.
var ValidVehicleTypes = []string{"Sedan", "SUV", "Hatchback", "Mini"}

// IsValidVehicleType reports whether vt is one of ValidVehicleTypes.
// Matching is exact: no trimming or case folding.
func IsValidVehicleType(vt string) bool {
	for _, v := range ValidVehicleTypes {
		if vt == v {
			return true
		}
	}
	return false
}
