package models

import (
	"fmt"
	"slices"
)

// Location is one of the campus places an item can be found.
type Location string

const (
	LocationLibrary         Location = "Library"
	LocationStudentCenter   Location = "Student Center"
	LocationCafeteria       Location = "Cafeteria"
	LocationGym             Location = "Gym"
	LocationLectureHallA    Location = "Lecture Hall A"
	LocationLectureHallB    Location = "Lecture Hall B"
	LocationScienceBuilding Location = "Science Building"
	LocationArtsBuilding    Location = "Arts Building"
	LocationDormitory       Location = "Dormitory"
	LocationParkingLot      Location = "Parking Lot"
	LocationOther           Location = "Other"
)

var locations = []Location{
	LocationLibrary,
	LocationStudentCenter,
	LocationCafeteria,
	LocationGym,
	LocationLectureHallA,
	LocationLectureHallB,
	LocationScienceBuilding,
	LocationArtsBuilding,
	LocationDormitory,
	LocationParkingLot,
	LocationOther,
}

// Locations returns the closed campus location list in display order.
func Locations() []Location {
	return slices.Clone(locations)
}

// ParseLocation returns the Location named s. Matching is exact.
func ParseLocation(s string) (Location, error) {
	l := Location(s)
	if !l.Valid() {
		return "", fmt.Errorf("unknown location %q", s)
	}
	return l, nil
}

// Valid reports whether l is a member of the location list.
func (l Location) Valid() bool {
	return slices.Contains(locations, l)
}

func (l Location) String() string {
	return string(l)
}
