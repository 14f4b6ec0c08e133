package config_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/gysosin/Pi_monitor/internal/config"
)

var _ = Describe("Config", func() {
	It("ships production defaults that validate", func() {
		cfg := config.Default()
		Expect(cfg.Validate()).To(Succeed())
		Expect(cfg.MaxEntries).To(Equal(180))
		Expect(cfg.Interval).To(Equal(time.Minute))
		Expect(cfg.ExternalHost).To(Equal("obm.one"))
		Expect(cfg.GatewayHost).To(Equal("192.168.1.1"))
		Expect(cfg.ConnectionName).To(Equal("preconfigured"))
	})

	DescribeTable("rejects impossible settings",
		func(mutate func(*config.Config), msg string) {
			cfg := config.Default()
			mutate(&cfg)
			err := cfg.Validate()
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring(msg))
		},
		Entry("empty log file", func(c *config.Config) { c.LogFile = "" }, "log file"),
		Entry("shared paths", func(c *config.Config) { c.ErrorFile = c.LogFile }, "same path"),
		Entry("zero capacity", func(c *config.Config) { c.MaxEntries = 0 }, "max entries"),
		Entry("zero interval", func(c *config.Config) { c.Interval = 0 }, "interval"),
		Entry("sub-second ping", func(c *config.Config) { c.PingDeadline = 500 * time.Millisecond }, "ping deadline"),
		Entry("no connection", func(c *config.Config) { c.ConnectionName = "" }, "connection name"),
		Entry("no nmcli", func(c *config.Config) { c.NMCLICommand = nil }, "command lines"),
	)
})
