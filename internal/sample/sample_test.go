package sample

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.flashlog/internal/layout"
)

func TestRecordFields(t *testing.T) {
	s := Sample{
		Timestamp:      1700000000,
		RainTicks:      3,
		WindTicks:      120,
		WindGustTicks:  300,
		WindLullTicks:  12,
		WindDir:        270,
		WindGustDir:    265,
		WindLullDir:    280,
		BatteryVoltage: 4012,
		TemperatureH:   215,
		Humidity:       640,
		Temperature:    21.5,
		Pressure:       1013.25,
	}

	rec := s.Record()
	assert.Equal(t, uint32(1700000000), rec.Timestamp)
	assert.Len(t, rec.Payload, layout.PayloadSize)
	assert.Equal(t, byte(3), rec.Payload[0])
	assert.Equal(t, []byte{120, 0}, rec.Payload[1:3])

	assert.Equal(t, s, FromRecord(&rec))
}

func TestFromShortPayload(t *testing.T) {
	got := FromRecord(&layout.Record{Timestamp: 9, Payload: []byte{5}})
	assert.Equal(t, Sample{Timestamp: 9, RainTicks: 5}, got)
}

func TestPrint(t *testing.T) {
	var buf bytes.Buffer
	s := Sample{Timestamp: 42, WindTicks: 7, WindDir: 90, Pressure: 1000}
	s.Print(&buf)

	out := buf.String()
	assert.Contains(t, out, "EPOCH: 42\n")
	assert.Contains(t, out, "Windticks: 7, Winddir: 90\n")
	assert.Contains(t, out, "Pressure: 1000.00")
}
