// Package sample defines the weather-station reading carried in the
// payload of every log record.
package sample

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"go.flashlog/internal/layout"
)

// Sample is one reading. Timestamp is seconds since the Unix epoch.
type Sample struct {
	Timestamp uint32

	RainTicks uint8

	WindTicks     uint16
	WindGustTicks uint16
	WindLullTicks uint16
	WindDir       uint16
	WindGustDir   uint16
	WindLullDir   uint16

	BatteryVoltage uint16

	TemperatureH uint16
	Humidity     uint16

	Temperature float32
	Pressure    float32
}

// payload offsets
const (
	offRain        = 0
	offWindTicks   = 1
	offGustTicks   = 3
	offLullTicks   = 5
	offWindDir     = 7
	offGustDir     = 9
	offLullDir     = 11
	offBattery     = 13
	offTempH       = 15
	offHumidity    = 17
	offTemperature = 19
	offPressure    = 23
)

// Record packs the sample into a log record.
func (s *Sample) Record() layout.Record {
	p := make([]byte, layout.PayloadSize)
	le := binary.LittleEndian

	p[offRain] = s.RainTicks
	le.PutUint16(p[offWindTicks:], s.WindTicks)
	le.PutUint16(p[offGustTicks:], s.WindGustTicks)
	le.PutUint16(p[offLullTicks:], s.WindLullTicks)
	le.PutUint16(p[offWindDir:], s.WindDir)
	le.PutUint16(p[offGustDir:], s.WindGustDir)
	le.PutUint16(p[offLullDir:], s.WindLullDir)
	le.PutUint16(p[offBattery:], s.BatteryVoltage)
	le.PutUint16(p[offTempH:], s.TemperatureH)
	le.PutUint16(p[offHumidity:], s.Humidity)
	le.PutUint32(p[offTemperature:], math.Float32bits(s.Temperature))
	le.PutUint32(p[offPressure:], math.Float32bits(s.Pressure))

	return layout.Record{Timestamp: s.Timestamp, Payload: p}
}

// FromRecord unpacks a record. A short payload is treated as zeros.
func FromRecord(r *layout.Record) Sample {
	p := make([]byte, layout.PayloadSize)
	copy(p, r.Payload)
	le := binary.LittleEndian

	return Sample{
		Timestamp:      r.Timestamp,
		RainTicks:      p[offRain],
		WindTicks:      le.Uint16(p[offWindTicks:]),
		WindGustTicks:  le.Uint16(p[offGustTicks:]),
		WindLullTicks:  le.Uint16(p[offLullTicks:]),
		WindDir:        le.Uint16(p[offWindDir:]),
		WindGustDir:    le.Uint16(p[offGustDir:]),
		WindLullDir:    le.Uint16(p[offLullDir:]),
		BatteryVoltage: le.Uint16(p[offBattery:]),
		TemperatureH:   le.Uint16(p[offTempH:]),
		Humidity:       le.Uint16(p[offHumidity:]),
		Temperature:    math.Float32frombits(le.Uint32(p[offTemperature:])),
		Pressure:       math.Float32frombits(le.Uint32(p[offPressure:])),
	}
}

// Print writes the sample one field per line.
func (s *Sample) Print(w io.Writer) {
	fmt.Fprintf(w, "EPOCH: %d\n", s.Timestamp)
	fmt.Fprintf(w, "Rain: %d\n", s.RainTicks)
	fmt.Fprintf(w, "Windticks: %d, Winddir: %d\n", s.WindTicks, s.WindDir)
	fmt.Fprintf(w, "Windticks Gust: %d, Winddir: %d\n", s.WindGustTicks, s.WindGustDir)
	fmt.Fprintf(w, "Windticks Lull: %d, Winddir: %d\n", s.WindLullTicks, s.WindLullDir)
	fmt.Fprintf(w, "Battery Volt: %d\n", s.BatteryVoltage)
	fmt.Fprintf(w, "Temperature (H): %d, Humidity: %d\n", s.TemperatureH, s.Humidity)
	fmt.Fprintf(w, "Temperature: %.2f, Pressure: %.2f\n", s.Temperature, s.Pressure)
}
