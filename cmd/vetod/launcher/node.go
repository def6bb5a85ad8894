package launcher

import (
	"fmt"
	"math/big"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/sirupsen/logrus"

	"github.com/hexgov/crossveto/integration"
)

// Default fakenet endpoint addresses, used when the binding flags are
// left empty.
var (
	defaultHomeAddr   = common.HexToAddress("0x00000000000000000000000000000000000f4001")
	defaultRemoteAddr = common.HexToAddress("0x00000000000000000000000000000000000f4002")
)

// runNode assembles the runtime for the configured network and blocks
// until a shutdown signal arrives.
//
// Only the fake network is runnable fully in-process: main and test rules
// need an external bridge attached through the bridge.Transport interface,
// which is outside this daemon's scope.
func runNode(cfg Config) error {
	if cfg.Gov.Name != "fake" {
		return fmt.Errorf("network %q requires an external bridge transport; only the fake in-process loopback is runnable", cfg.Gov.Name)
	}

	homeAddr := cfg.Binding.Counterpart
	if homeAddr == (common.Address{}) {
		homeAddr = defaultHomeAddr
	}
	remoteAddr := cfg.Binding.Self
	if remoteAddr == (common.Address{}) {
		remoteAddr = defaultRemoteAddr
	}

	lb, err := integration.NewLoopback(cfg.Gov, new(big.Int).SetUint64(cfg.BaseFee), homeAddr, remoteAddr)
	if err != nil {
		return err
	}
	lb.Clock.Set(uint64(time.Now().Unix()))

	// Tick the loopback's ledger clock along with the wall clock.
	stop := make(chan struct{})
	go func() {
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				lb.Clock.Set(uint64(time.Now().Unix()))
			}
		}
	}()

	logrus.WithFields(logrus.Fields{
		"home":   cfg.Gov.HomeDomainID,
		"remote": cfg.Gov.RemoteDomainID,
	}).Info("fakenet loopback running")

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigc)
	<-sigc

	close(stop)
	logrus.Info("interrupt received, shutting down")
	return nil
}
