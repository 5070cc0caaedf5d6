package domain

// Point - координаты в градусах (WGS84)
type Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}
