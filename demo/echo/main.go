// Copyright 2025 Netsock Contributors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command echo brings up a simulated network interface, runs a TCP echo
// server on the socket stack and talks to it with a client socket. It shows
// the bounded-wait polling style the stack imposes: every transient failure
// is a WouldBlock that the caller retries.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/pelletier/go-toml/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	"github.com/netsock/netsock/pkg/iface"
	"github.com/netsock/netsock/pkg/log"
	"github.com/netsock/netsock/pkg/metrics"
	"github.com/netsock/netsock/pkg/private/serrors"
	"github.com/netsock/netsock/pkg/private/util"
	"github.com/netsock/netsock/pkg/sock"
	"github.com/netsock/netsock/pkg/sock/engine"
	"github.com/netsock/netsock/pkg/sock/engine/enginetest"
)

const echoPort = 7

type config struct {
	Logging   log.Config   `toml:"log,omitempty"`
	Sockets   sock.Config  `toml:"sockets,omitempty"`
	Interface iface.Config `toml:"interface,omitempty"`
}

type flags struct {
	configFile     string
	messages       int
	acquireTimeout util.DurWrap
}

func (f *flags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.configFile, "config", "", "TOML config file")
	fs.IntVar(&f.messages, "messages", 3, "number of messages to echo")
	fs.Var(&f.acquireTimeout, "acquire-timeout",
		"override the address acquisition budget")
}

func main() {
	var f flags
	cmd := &cobra.Command{
		Use:           "echo",
		Short:         "Run an echo server and client on the socket stack",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(f)
		},
	}
	f.register(cmd.Flags())

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(f flags) error {
	var cfg config
	if f.configFile != "" {
		raw, err := os.ReadFile(f.configFile)
		if err != nil {
			return serrors.Wrap("reading config", err, "file", f.configFile)
		}
		if err := toml.Unmarshal(raw, &cfg); err != nil {
			return serrors.Wrap("parsing config", err, "file", f.configFile)
		}
	}
	if f.acquireTimeout.Duration != 0 {
		cfg.Interface.AcquireTimeout = f.acquireTimeout
	}
	if err := log.Setup(cfg.Logging); err != nil {
		return err
	}
	defer log.Flush()
	defer log.HandlePanic()

	eng := enginetest.New()
	dev := enginetest.NewDevice("")
	coord := iface.NewCoordinator(eng, dev, cfg.Interface, iface.Metrics{
		BringupAttempts: metrics.NewPromCounterFrom(prometheus.CounterOpts{
			Name: "iface_bringup_attempts_total",
			Help: "Interface bring-up attempts.",
		}, nil),
		BringupFailures: metrics.NewPromCounterFrom(prometheus.CounterOpts{
			Name: "iface_bringup_failures_total",
			Help: "Interface bring-ups that expired the acquisition budget.",
		}, nil),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := coord.BringUp(ctx); err != nil {
		return serrors.Wrap("bringing interface up", err)
	}
	defer coord.Teardown()
	ip, _ := coord.IPAddress()
	mac, _ := coord.MACAddress()
	log.Info("Interface up", "ip", ip, "mac", mac)

	stack := sock.New(eng, cfg.Sockets, sock.Metrics{
		Opens: metrics.NewPromCounterFrom(prometheus.CounterOpts{
			Name: "sock_opens_total",
			Help: "Sockets opened.",
		}, nil),
		WouldBlocks: metrics.NewPromCounterFrom(prometheus.CounterOpts{
			Name: "sock_would_blocks_total",
			Help: "Operations that reported WouldBlock.",
		}, nil),
		SocketsInUse: metrics.NewPromGaugeFrom(prometheus.GaugeOpts{
			Name: "sock_in_use",
			Help: "Occupied socket slots.",
		}, nil),
	})

	srv, err := stack.Open(engine.TCP)
	if err != nil {
		return err
	}
	serverAddr := sock.Addr{Host: ip, Port: echoPort}
	if err := stack.Bind(srv, serverAddr); err != nil {
		return err
	}
	if err := stack.Listen(srv, 4); err != nil {
		return err
	}
	log.Info("Echo server listening", "addr", serverAddr)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer log.HandlePanic()
		return serve(ctx, stack, srv)
	})

	if err := client(ctx, stack, serverAddr, f.messages); err != nil {
		return err
	}
	printSockets(stack)

	// Closing the listener makes the server loop wind down.
	if err := stack.Close(srv); err != nil {
		log.Error("Closing listener", "err", err)
	}
	if err := g.Wait(); err != nil {
		return err
	}
	log.Info("Done")
	return nil
}

// serve accepts one connection at a time and echoes everything back until the
// peer closes.
func serve(ctx context.Context, stack *sock.Stack, srv sock.Handle) error {
	for {
		conn, err := stack.Accept(srv)
		if err != nil {
			if sock.CodeOf(err).Timeout() {
				if ctx.Err() != nil {
					return nil
				}
				continue
			}
			switch sock.CodeOf(err) {
			case sock.InvalidParameter, sock.NoConnection:
				// Listener was closed, normal shutdown.
				return nil
			}
			return serrors.Wrap("accepting", err)
		}
		if err := echo(ctx, stack, conn); err != nil {
			return err
		}
	}
}

func echo(ctx context.Context, stack *sock.Stack, conn sock.Handle) error {
	defer stack.Close(conn)
	buf := make([]byte, 256)
	for ctx.Err() == nil {
		n, err := stack.Recv(conn, buf)
		if err != nil {
			if sock.CodeOf(err).Timeout() {
				continue
			}
			return serrors.Wrap("receiving", err)
		}
		if n == 0 {
			// Orderly close by the peer.
			return nil
		}
		for sent := 0; sent < n; {
			m, err := stack.Send(conn, buf[sent:n])
			if err != nil {
				if sock.CodeOf(err).Timeout() {
					continue
				}
				return serrors.Wrap("echoing", err)
			}
			sent += m
		}
	}
	return nil
}

func client(ctx context.Context, stack *sock.Stack, server sock.Addr, messages int) error {
	h, err := stack.Open(engine.TCP)
	if err != nil {
		return err
	}
	defer stack.Close(h)
	if err := stack.Connect(h, server); err != nil {
		return serrors.Wrap("connecting", err)
	}

	buf := make([]byte, 256)
	for i := 0; i < messages; i++ {
		msg := fmt.Sprintf("message %d", i+1)
		if _, err := stack.Send(h, []byte(msg)); err != nil {
			return serrors.Wrap("sending", err, "msg", msg)
		}
		var got []byte
		for len(got) < len(msg) && ctx.Err() == nil {
			n, err := stack.Recv(h, buf)
			if err != nil {
				if sock.CodeOf(err).Timeout() {
					continue
				}
				return serrors.Wrap("receiving echo", err)
			}
			got = append(got, buf[:n]...)
		}
		log.Info("Echoed", "sent", msg, "received", string(got))
	}
	return nil
}

func printSockets(stack *sock.Stack) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Handle", "Proto", "Bytes In", "Bytes Out"})
	for _, info := range stack.Sockets() {
		table.Append([]string{
			info.Handle.String(),
			info.Protocol.String(),
			fmt.Sprint(info.BytesIn),
			fmt.Sprint(info.BytesOut),
		})
	}
	table.Render()
}
