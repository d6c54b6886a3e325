package shell

import (
	"os"
	"os/signal"
	"syscall"
)

// watchSignals keeps terminal interrupts from killing the launcher while the
// child runs. The child is in the same process group and receives them
// itself. Notify rather than Ignore: ignored dispositions are inherited
// across exec.
func (b *Backend) watchSignals() func() {
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGQUIT)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for sig := range signalChan {
			b.logger().Debug("signal left to backend", "signal", sig.String())
		}
	}()

	return func() {
		signal.Stop(signalChan)
		close(signalChan)
		<-done
	}
}
