package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"car-rental-backend/internal/domain"
	"car-rental-backend/internal/utils"
)

// timestampLayout is the one datetime format the desk accepts. Parse
// failures are rejected here; the core only ever sees time.Time values.
const timestampLayout = "2006-01-02 15:04"

func prompt(in *bufio.Scanner, label string) (string, error) {
	fmt.Print(label)
	if !in.Scan() {
		if err := in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(in.Text()), nil
}

func promptTimestamp(in *bufio.Scanner, label string) (time.Time, error) {
	raw, err := prompt(in, label)
	if err != nil {
		return time.Time{}, err
	}
	if raw == "" {
		return time.Now(), nil
	}
	t, err := time.ParseInLocation(timestampLayout, raw, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q, want YYYY-MM-DD HH:MM", raw)
	}
	return t, nil
}

func promptPrice(in *bufio.Scanner, label string) (int64, error) {
	raw, err := prompt(in, label)
	if err != nil {
		return 0, err
	}
	return parsePriceCents(raw)
}

// parsePriceCents converts a decimal dollar amount such as "12", "12.5" or
// "$12.50" into integer cents without going through floating point.
func parsePriceCents(s string) (int64, error) {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "$"))
	if s == "" {
		return 0, fmt.Errorf("empty price")
	}
	whole, frac, hasFrac := strings.Cut(s, ".")
	dollars, err := strconv.ParseInt(whole, 10, 64)
	if err != nil || dollars < 0 {
		return 0, fmt.Errorf("invalid price %q", s)
	}
	cents := int64(0)
	if hasFrac {
		if len(frac) == 0 || len(frac) > 2 {
			return 0, fmt.Errorf("invalid price %q, at most two decimal places", s)
		}
		if len(frac) == 1 {
			frac += "0"
		}
		cents, err = strconv.ParseInt(frac, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid price %q", s)
		}
	}
	return dollars*100 + cents, nil
}

func printVehicle(v *domain.Vehicle) {
	status := "Available"
	if !v.Available {
		status = "Not Available"
	}
	fmt.Printf("Vehicle ID: %s | Model: %s | Status: %s\n", v.ID, v.Model, status)
	fmt.Printf("   Hourly: %s | Daily: %s | Weekly: %s\n",
		utils.FormatCents(v.HourlyRateCents),
		utils.FormatCents(v.DailyRateCents),
		utils.FormatCents(v.WeeklyRateCents))
}
