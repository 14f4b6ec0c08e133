package monitor_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/gysosin/Pi_monitor/internal/collectors"
	"github.com/gysosin/Pi_monitor/internal/monitor"
)

var _ = Describe("Sample", func() {
	at := time.Date(2026, 10, 16, 9, 5, 7, 0, time.Local)

	It("renders every field in the fixed layout", func() {
		ps, err := collectors.ParseThrottled("throttled=0x50005")
		Expect(err).NotTo(HaveOccurred())

		s := monitor.Sample{
			Timestamp: at,
			CPUTemp:   collectors.Celsius(45.2),
			Load:      0.5,
			Power:     ps,
			NVMeTemp:  collectors.Celsius(38),
			Ping:      monitor.PingOK,
		}

		Expect(s.String()).To(Equal("2026-10-16 09:05:07 | CPU Temp: 45.2°C | Load: 0.50 | " +
			"Undervoltage: True (Occurred: True) | Throttled: False (Occurred: False) | " +
			"Temp Limit: True (Occurred: True) | NVMe Temp: 38.0°C | Ping: OK"))
	})

	It("renders unavailable readings with their markers", func() {
		s := monitor.Sample{
			Timestamp: at,
			Load:      1.234,
			Power:     collectors.UnknownPowerStatus,
			Ping:      "Restarted connection: preconfigured",
		}

		Expect(s.String()).To(Equal("2026-10-16 09:05:07 | CPU Temp: None°C | Load: 1.23 | " +
			"Undervoltage: N/A (Occurred: N/A) | Throttled: N/A (Occurred: N/A) | " +
			"Temp Limit: N/A (Occurred: N/A) | NVMe Temp: N/A°C | Ping: Restarted connection: preconfigured"))
	})

	It("formats timestamps to the second", func() {
		Expect(monitor.FormatTimestamp(at.Add(999 * time.Millisecond))).To(Equal("2026-10-16 09:05:07"))
	})
})
