package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.flashlog/internal/sample"
)

var appendSample sample.Sample

var appendCmd = &cobra.Command{
	Use:   "append",
	Short: "Append one sample at the write cursor",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s := appendSample
		if s.Timestamp == 0 {
			s.Timestamp = uint32(time.Now().Unix())
		}

		if err := db.Append(s); err != nil {
			return err
		}

		cur := db.Cursors()
		fmt.Fprintf(cmd.OutOrStdout(), "appended ts=%d (current=%d upload=%d)\n", s.Timestamp, cur.Current, cur.Upload)
		return nil
	},
}

func init() {
	f := appendCmd.Flags()
	f.Uint32Var(&appendSample.Timestamp, "ts", 0, "seconds since epoch (default now)")
	f.Uint8Var(&appendSample.RainTicks, "rain", 0, "rain ticks")
	f.Uint16Var(&appendSample.WindTicks, "wind", 0, "wind ticks")
	f.Uint16Var(&appendSample.WindGustTicks, "gust", 0, "wind gust ticks")
	f.Uint16Var(&appendSample.WindLullTicks, "lull", 0, "wind lull ticks")
	f.Uint16Var(&appendSample.WindDir, "wind-dir", 0, "wind direction")
	f.Uint16Var(&appendSample.WindGustDir, "gust-dir", 0, "gust direction")
	f.Uint16Var(&appendSample.WindLullDir, "lull-dir", 0, "lull direction")
	f.Uint16Var(&appendSample.BatteryVoltage, "battery", 0, "battery voltage (mV)")
	f.Uint16Var(&appendSample.TemperatureH, "temp-h", 0, "temperature from the humidity sensor")
	f.Uint16Var(&appendSample.Humidity, "humidity", 0, "relative humidity")
	f.Float32Var(&appendSample.Temperature, "temperature", 0, "temperature")
	f.Float32Var(&appendSample.Pressure, "pressure", 0, "pressure")

	rootCmd.AddCommand(appendCmd)
}
