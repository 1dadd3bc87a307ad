// ingest/csv_reader.go
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/avelark/ridelake/models"
	"github.com/jszwec/csvutil"
)

// ParseCustomersCsv takes an io.Reader containing the customers extract and
// returns a slice of RawCustomer structs, in file order.
// csvutil assumes the first line is a header and maps columns to struct
// fields based on the `csv:"..."` tags.
func ParseCustomersCsv(reader io.Reader) ([]models.RawCustomer, error) {
	var customers []models.RawCustomer

	decoder, err := csvutil.NewDecoder(csv.NewReader(reader))
	if err != nil {
		return nil, fmt.Errorf("failed to create CSV decoder for customers: %w", err)
	}
	if err := decoder.Decode(&customers); err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to decode customers CSV data: %w", err)
	}
	return customers, nil
}

// ParseDriversCsv parses the drivers extract.
func ParseDriversCsv(reader io.Reader) ([]models.RawDriver, error) {
	var drivers []models.RawDriver

	decoder, err := csvutil.NewDecoder(csv.NewReader(reader))
	if err != nil {
		return nil, fmt.Errorf("failed to create CSV decoder for drivers: %w", err)
	}
	if err := decoder.Decode(&drivers); err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to decode drivers CSV data: %w", err)
	}
	return drivers, nil
}

// ParseTripsCsv parses the trips extract. trip_fare stays a string here;
// numeric coercion is the silver build's job.
func ParseTripsCsv(reader io.Reader) ([]models.RawTrip, error) {
	var trips []models.RawTrip

	decoder, err := csvutil.NewDecoder(csv.NewReader(reader))
	if err != nil {
		return nil, fmt.Errorf("failed to create CSV decoder for trips: %w", err)
	}
	if err := decoder.Decode(&trips); err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to decode trips CSV data: %w", err)
	}
	return trips, nil
}

// ParsePaymentsCsv parses the payments extract.
func ParsePaymentsCsv(reader io.Reader) ([]models.RawPayment, error) {
	var payments []models.RawPayment

	decoder, err := csvutil.NewDecoder(csv.NewReader(reader))
	if err != nil {
		return nil, fmt.Errorf("failed to create CSV decoder for payments: %w", err)
	}
	if err := decoder.Decode(&payments); err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to decode payments CSV data: %w", err)
	}
	return payments, nil
}
