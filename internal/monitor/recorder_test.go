package monitor_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"

	"github.com/gysosin/Pi_monitor/internal/collectors"
	"github.com/gysosin/Pi_monitor/internal/config"
	"github.com/gysosin/Pi_monitor/internal/logstore"
	"github.com/gysosin/Pi_monitor/internal/monitor"
)

// countingRecovery wraps a real recovery and counts invocations.
type countingRecovery struct {
	inner monitor.Recoverer
	calls int
}

func (c *countingRecovery) Restart(ctx context.Context, at time.Time) string {
	c.calls++
	return c.inner.Restart(ctx, at)
}

var _ = Describe("Recorder", func() {
	var (
		cfg      config.Config
		probes   *fakeProbes
		runner   *fakeRunner
		recovery *countingRecovery
		recorder *monitor.Recorder
		clock    time.Time
	)

	readLines := func(path string) []string {
		data, err := os.ReadFile(path)
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		Expect(err).NotTo(HaveOccurred())
		return strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	}

	BeforeEach(func() {
		dir := GinkgoT().TempDir()
		cfg = config.Default()
		cfg.LogFile = filepath.Join(dir, "system_monitor.log")
		cfg.ErrorFile = filepath.Join(dir, "system_monitor_error.log")
		cfg.SettleDelay = 0

		probes = &fakeProbes{
			cpu:   collectors.Celsius(45.2),
			load:  0.42,
			power: collectors.PowerStatusFromCode(0),
			nvme:  collectors.Celsius(38),
			reachable: map[string]bool{
				cfg.ExternalHost: true,
				cfg.GatewayHost:  true,
			},
		}
		runner = &fakeRunner{fail: map[string]error{}}
		log := zap.NewNop().Sugar()
		recovery = &countingRecovery{
			inner: monitor.NewConnectionRecovery(cfg, runner, logstore.NewErrorLog(cfg.ErrorFile), log),
		}
		recorder = monitor.NewRecorder(cfg, probes, recovery, log)

		clock = time.Date(2026, 10, 16, 8, 0, 0, 0, time.Local)
		recorder.Now = func() time.Time {
			clock = clock.Add(time.Minute)
			return clock
		}
	})

	It("records OK and skips recovery when both probes answer", func() {
		s, err := recorder.Record(context.Background())
		Expect(err).NotTo(HaveOccurred())
		Expect(s.Ping).To(Equal("OK"))
		Expect(recovery.calls).To(BeZero())
		Expect(runner.calls).To(BeEmpty())

		lines := readLines(cfg.LogFile)
		Expect(lines).To(HaveLen(1))
		Expect(lines[0]).To(HavePrefix("2026-10-16 08:01:00 | CPU Temp: 45.2°C | Load: 0.42 |"))
		Expect(lines[0]).To(HaveSuffix("| Ping: OK"))
		Expect(readLines(cfg.ErrorFile)).To(BeNil())
	})

	DescribeTable("recovers exactly once when either probe fails",
		func(externalUp, gatewayUp bool) {
			probes.reachable[cfg.ExternalHost] = externalUp
			probes.reachable[cfg.GatewayHost] = gatewayUp

			s, err := recorder.Record(context.Background())
			Expect(err).NotTo(HaveOccurred())
			Expect(recovery.calls).To(Equal(1))
			Expect(s.Ping).To(Equal("Restarted connection: preconfigured"))
			Expect(readLines(cfg.ErrorFile)).To(Equal([]string{"2026-10-16 08:01:00 Connection error."}))
		},
		Entry("external down", false, true),
		Entry("gateway down", true, false),
		Entry("both down", false, false),
	)

	It("logs the recovery error when bringing the connection up fails", func() {
		probes.reachable = map[string]bool{}
		runner.fail["sudo nmcli connection up preconfigured"] = errExit

		s, err := recorder.Record(context.Background())
		Expect(err).NotTo(HaveOccurred())
		Expect(s.Ping).To(HavePrefix("Error restarting connection:"))
		Expect(s.Ping).To(ContainSubstring("exit status 1"))

		lines := readLines(cfg.LogFile)
		Expect(lines[0]).To(HaveSuffix("| Ping: " + s.Ping))
		Expect(readLines(cfg.ErrorFile)).To(Equal([]string{monitor.FormatTimestamp(s.Timestamp) + " Connection error."}))
	})

	It("renders an unavailable power probe as N/A in all six fields", func() {
		probes.power = collectors.UnknownPowerStatus

		_, err := recorder.Record(context.Background())
		Expect(err).NotTo(HaveOccurred())

		line := readLines(cfg.LogFile)[0]
		Expect(strings.Count(line, "N/A")).To(Equal(6))
		Expect(line).To(ContainSubstring("Undervoltage: N/A (Occurred: N/A)"))
		Expect(line).NotTo(ContainSubstring("False"))
	})

	It("keeps the newest 180 of 200 cycles, newest first", func() {
		for i := 0; i < 200; i++ {
			_, err := recorder.Record(context.Background())
			Expect(err).NotTo(HaveOccurred())
		}

		lines := readLines(cfg.LogFile)
		Expect(lines).To(HaveLen(180))
		Expect(lines[0]).To(HavePrefix(monitor.FormatTimestamp(clock)))
		oldest := clock.Add(-179 * time.Minute)
		Expect(lines[179]).To(HavePrefix(monitor.FormatTimestamp(oldest)))
	})

	It("fails the cycle without writing when the load average is unreadable", func() {
		probes.loadErr = fmt.Errorf("read load average: %w", os.ErrPermission)

		_, err := recorder.Record(context.Background())
		Expect(err).To(MatchError(os.ErrPermission))
		Expect(readLines(cfg.LogFile)).To(BeNil())
	})

	It("returns the write error when the log cannot be replaced", func() {
		cfg.LogFile = filepath.Join(GinkgoT().TempDir(), "missing", "system_monitor.log")
		recorder = monitor.NewRecorder(cfg, probes, recovery, zap.NewNop().Sugar())

		_, err := recorder.Record(context.Background())
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("write sample"))
	})

	It("does not recover when pings fail because of shutdown", func() {
		probes.reachable = map[string]bool{}
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := recorder.Record(ctx)
		Expect(err).To(MatchError(context.Canceled))
		Expect(recovery.calls).To(BeZero())
	})
})
