// pkg/path/loader.go
package path

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// LoadCSV reads waypoints from a CSV file with an "x,y" header row,
// one waypoint per line.
func LoadCSV(filename string) ([]Point, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open waypoint file: %w", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read waypoint file: %w", err)
	}
	if len(rows) < 1 {
		return nil, fmt.Errorf("waypoint file %s is empty", filename)
	}

	points := make([]Point, 0, len(rows)-1)
	for i, row := range rows[1:] { // skip header
		if len(row) < 2 {
			return nil, fmt.Errorf("waypoint row %d has %d columns, want 2", i+2, len(row))
		}
		x, err := strconv.ParseFloat(row[0], 64)
		if err != nil {
			return nil, fmt.Errorf("waypoint row %d: bad x: %w", i+2, err)
		}
		y, err := strconv.ParseFloat(row[1], 64)
		if err != nil {
			return nil, fmt.Errorf("waypoint row %d: bad y: %w", i+2, err)
		}
		points = append(points, Point{X: x, Y: y})
	}
	return points, nil
}

// DefaultTrack is the built-in 800x600 track used when no waypoint file
// is supplied.
func DefaultTrack() *Path {
	p, err := New([]Point{
		{0, 250},
		{400, 250},
		{400, 110},
		{265, 110},
		{265, 480},
		{135, 480},
		{135, 350},
		{510, 350},
		{510, 195},
		{605, 195},
		{605, 430},
		{360, 430},
		{360, 490},
		{360, 600},
	})
	if err != nil {
		panic(err) // the built-in track is known good
	}
	return p
}
