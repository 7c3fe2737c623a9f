package qpi

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestSaveConvergencePlot(t *testing.T) {
	Convey("Given a sequence of estimates", t, func() {
		estimates := []Estimate{
			{Qubits: 2, Value: 2.0},
			{Qubits: 3, Value: 4.0},
			{Qubits: 4, Value: 2.6666666666666665},
			{Qubits: 5, Value: 3.2},
		}

		Convey("The plot lands on disk as a PNG", func() {
			path := filepath.Join(t.TempDir(), "convergence.png")
			So(SaveConvergencePlot(estimates, path), ShouldBeNil)

			info, err := os.Stat(path)
			So(err, ShouldBeNil)
			So(info.Size(), ShouldBeGreaterThan, 0)
		})

		Convey("An empty sequence is rejected", func() {
			So(SaveConvergencePlot(nil, "unused.png"), ShouldNotBeNil)
		})
	})
}
