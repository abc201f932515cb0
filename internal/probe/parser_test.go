package probe_test

import (
	"testing"

	"github.com/robgonnella/netscope/internal/probe"
	"github.com/stretchr/testify/assert"
)

const windowsReply = `
Pinging 10.0.0.1 with 32 bytes of data:
Reply from 10.0.0.1: bytes=32 time=37ms TTL=64

Ping statistics for 10.0.0.1:
    Packets: Sent = 1, Received = 1, Lost = 0 (0% loss),
`

const windowsLocal = `
Pinging 127.0.0.1 with 32 bytes of data:
Reply from 127.0.0.1: bytes=32 time<1ms TTL=128
`

const windowsTimeout = `
Pinging 10.255.255.1 with 32 bytes of data:
Request timed out.

Ping statistics for 10.255.255.1:
    Packets: Sent = 1, Received = 0, Lost = 1 (100% loss),
`

const windowsUnreachable = `
Pinging 10.1.1.1 with 32 bytes of data:
Reply from 192.168.1.1: Destination host unreachable.
`

const linuxReply = `PING 127.0.0.1 (127.0.0.1) 56(84) bytes of data.
64 bytes from 127.0.0.1: icmp_seq=1 ttl=64 time=0.045 ms

--- 127.0.0.1 ping statistics ---
1 packets transmitted, 1 received, 0% packet loss, time 0ms
`

func TestMarkerParser(t *testing.T) {
	t.Run("parses explicit round trip time", func(st *testing.T) {
		assert.True(st, probe.WindowsParser.Success(windowsReply))
		assert.Equal(st, 37, probe.WindowsParser.Latency(windowsReply, 120))
		assert.Equal(st, 37, probe.WindowsParser.Latency("time=37ms", 0))
	})

	t.Run("round trip time alone counts as a reply", func(st *testing.T) {
		assert.True(st, probe.WindowsParser.Success("time=5ms"))
		assert.True(st, probe.UnixParser.Success("time=5.3 ms"))
		assert.Equal(st, 5, probe.WindowsParser.Latency("time=5ms", 0))
	})

	t.Run("reports sub millisecond replies as 1ms", func(st *testing.T) {
		assert.True(st, probe.WindowsParser.Success(windowsLocal))
		assert.Equal(st, 1, probe.WindowsParser.Latency(windowsLocal, 40))
		assert.Equal(st, 1, probe.WindowsParser.Latency("time<1ms", 0))
	})

	t.Run("reports 0 latency without timing markers", func(st *testing.T) {
		assert.False(st, probe.WindowsParser.Success(windowsTimeout))
		assert.Equal(st, 0, probe.WindowsParser.Latency(windowsTimeout, 1200))
		assert.Equal(st, 0, probe.WindowsParser.Latency("no markers here", 10))
	})

	t.Run("does not treat unreachable replies as success", func(st *testing.T) {
		assert.False(st, probe.WindowsParser.Success(windowsUnreachable))
	})

	t.Run("falls back to elapsed time for unparsable time value", func(st *testing.T) {
		assert.Equal(st, 55, probe.WindowsParser.Latency("time=??ms", 55))
	})

	t.Run("parses fractional unix times", func(st *testing.T) {
		assert.True(st, probe.UnixParser.Success(linuxReply))
		assert.Equal(st, 1, probe.UnixParser.Latency(linuxReply, 3))
		assert.Equal(st, 12, probe.UnixParser.Latency("time=12.8 ms", 3))
	})

	t.Run("selects parser by name", func(st *testing.T) {
		assert.Equal(st, probe.WindowsParser, probe.ParserFor("windows"))
		assert.Equal(st, probe.UnixParser, probe.ParserFor("unix"))
		assert.Equal(st, probe.NmapParser, probe.ParserFor("nmap"))
		assert.NotNil(st, probe.DefaultParser())
	})
}

func TestNmapParser(t *testing.T) {
	t.Run("parses host up with srtt", func(st *testing.T) {
		out := "Host 10.0.0.1 is up (srtt=2500us)\n"

		assert.True(st, probe.NmapParser.Success(out))
		assert.Equal(st, 2, probe.NmapParser.Latency(out, 100))
	})

	t.Run("parses sub millisecond srtt", func(st *testing.T) {
		assert.Equal(st, 1, probe.NmapParser.Latency("Host a is up (srtt=120us)", 0))
	})

	t.Run("host down", func(st *testing.T) {
		out := "Host 10.0.0.1 is down\n"

		assert.False(st, probe.NmapParser.Success(out))
		assert.Equal(st, 0, probe.NmapParser.Latency(out, 100))
	})
}
