package pipeline

import (
	"flag"
	"strconv"

	"github.com/plan-systems/klog"
)

// ConfigureLogging routes klog to stderr at the given verbosity.
func ConfigureLogging(verbosity int) {
	fset := flag.NewFlagSet("", flag.ContinueOnError)
	klog.InitFlags(fset)
	_ = fset.Set("logtostderr", "true")
	_ = fset.Set("v", strconv.Itoa(verbosity))
	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 16,
	})
}
