// services/silver_transform.go
package services

import (
	"strconv"
	"strings"
	"time"

	"github.com/avelark/ridelake/models"
)

// SilverResult is the outcome of one silver transform: the cleaned rows per
// entity, in source order, plus the data-quality counts computed over them.
type SilverResult struct {
	Customers []models.Customer
	Drivers   []models.Driver
	Trips     []models.Trip
	Payments  []models.Payment
	Quality   QualityCounts
}

// QualityCounts carries the per-entity data-quality summary. Customers and
// drivers count missing cells; trips and payments count fares that failed
// numeric coercion. Counts are taken over the final filtered rows, after
// every exclusion step has run.
type QualityCounts struct {
	MissingCustomers    int64
	MissingDrivers      int64
	InvalidTripFares    int64
	InvalidPaymentFares int64
}

// BuildSilver applies the full cleaning sequence to a bronze snapshot. The
// step order is fixed and cannot be reordered or parallelized:
//
//  1. dedupe each entity by its natural key (first row wins),
//  2. coerce dates and fares (failures become nil),
//  3. keep only drivers with a valid vehicle type,
//  4. keep only trips whose customer AND driver survived,
//  5. keep only payments whose trip survived.
//
// Dropping a driver therefore cascades through its trips to their payments.
// The transform is pure: the same bronze input always yields the same result.
func BuildSilver(
	rawCustomers []models.RawCustomer,
	rawDrivers []models.RawDriver,
	rawTrips []models.RawTrip,
	rawPayments []models.RawPayment,
) SilverResult {
	rawCustomers = dedupeByKey(rawCustomers, func(r models.RawCustomer) string { return r.CustomerID })
	rawDrivers = dedupeByKey(rawDrivers, func(r models.RawDriver) string { return r.DriverID })
	rawTrips = dedupeByKey(rawTrips, func(r models.RawTrip) string { return r.TripID })
	rawPayments = dedupeByKey(rawPayments, func(r models.RawPayment) string { return r.PaymentID })

	customers := make([]models.Customer, 0, len(rawCustomers))
	for _, r := range rawCustomers {
		customers = append(customers, models.Customer{
			CustomerID:   r.CustomerID,
			CustomerName: r.CustomerName,
			SignupDate:   parseDate(r.SignupDate),
		})
	}

	drivers := make([]models.Driver, 0, len(rawDrivers))
	for _, r := range rawDrivers {
		if !models.IsValidVehicleType(r.VehicleType) {
			continue
		}
		drivers = append(drivers, models.Driver{
			DriverID:    r.DriverID,
			DriverName:  r.DriverName,
			VehicleType: r.VehicleType,
		})
	}

	customerIDs := keySet(customers, func(c models.Customer) string { return c.CustomerID })
	driverIDs := keySet(drivers, func(d models.Driver) string { return d.DriverID })

	trips := make([]models.Trip, 0, len(rawTrips))
	for _, r := range rawTrips {
		if _, ok := customerIDs[r.CustomerID]; !ok {
			continue
		}
		if _, ok := driverIDs[r.DriverID]; !ok {
			continue
		}
		trips = append(trips, models.Trip{
			TripID:         r.TripID,
			CustomerID:     r.CustomerID,
			DriverID:       r.DriverID,
			PickupLocation: r.PickupLocation,
			DropLocation:   r.DropLocation,
			TripFare:       parseFare(r.TripFare),
		})
	}

	tripIDs := keySet(trips, func(t models.Trip) string { return t.TripID })

	payments := make([]models.Payment, 0, len(rawPayments))
	for _, r := range rawPayments {
		if _, ok := tripIDs[r.TripID]; !ok {
			continue
		}
		payments = append(payments, models.Payment{
			PaymentID:     r.PaymentID,
			TripID:        r.TripID,
			TripFare:      parseFare(r.TripFare),
			ModeOfPayment: r.ModeOfPayment,
		})
	}

	return SilverResult{
		Customers: customers,
		Drivers:   drivers,
		Trips:     trips,
		Payments:  payments,
		Quality: QualityCounts{
			MissingCustomers:    countMissingCustomers(customers),
			MissingDrivers:      countMissingDrivers(drivers),
			InvalidTripFares:    countNilTripFares(trips),
			InvalidPaymentFares: countNilPaymentFares(payments),
		},
	}
}

// dedupeByKey keeps the first row encountered per key, preserving input
// order. The policy is order-dependent on purpose: it matches the source
// extract's row order, which row_seq keeps stable through the database.
func dedupeByKey[T any](rows []T, key func(T) string) []T {
	seen := make(map[string]struct{}, len(rows))
	out := make([]T, 0, len(rows))
	for _, r := range rows {
		k := key(r)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, r)
	}
	return out
}

func keySet[T any](rows []T, key func(T) string) map[string]struct{} {
	set := make(map[string]struct{}, len(rows))
	for _, r := range rows {
		set[key(r)] = struct{}{}
	}
	return set
}

// dateLayouts are the formats the extracts have been seen to carry.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006/01/02",
	"01/02/2006",
}

// parseDate coerces a raw date cell; anything unparseable is nil, never an
// error.
func parseDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

// parseFare coerces a raw fare cell to a float; failures become nil.
func parseFare(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}

func countMissingCustomers(rows []models.Customer) int64 {
	var n int64
	for _, r := range rows {
		if r.CustomerID == "" {
			n++
		}
		if r.CustomerName == "" {
			n++
		}
		if r.SignupDate == nil {
			n++
		}
	}
	return n
}

func countMissingDrivers(rows []models.Driver) int64 {
	var n int64
	for _, r := range rows {
		if r.DriverID == "" {
			n++
		}
		if r.DriverName == "" {
			n++
		}
		if r.VehicleType == "" {
			n++
		}
	}
	return n
}

func countNilTripFares(rows []models.Trip) int64 {
	var n int64
	for _, r := range rows {
		if r.TripFare == nil {
			n++
		}
	}
	return n
}

func countNilPaymentFares(rows []models.Payment) int64 {
	var n int64
	for _, r := range rows {
		if r.TripFare == nil {
			n++
		}
	}
	return n
}
