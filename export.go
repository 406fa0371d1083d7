package orekit

import (
	"fmt"
	"os"
	"time"
)

// propagatedState is one sample of a propagation, as streamed to the
// exporters.
type propagatedState struct {
	Date AbsoluteDate
	SC   SpacecraftState
}

// ExportConfig configures the exporting of a propagation.
type ExportConfig struct {
	Filename  string
	AsXYZV    bool // interpolated states, <jd> <x> <y> <z> <vx> <vy> <vz>
	AsCSV     bool // osculating orbital elements
	Timestamp bool
}

// IsUseless returns whether this config doesn't actually do anything.
func (c ExportConfig) IsUseless() bool {
	return !c.AsXYZV && !c.AsCSV
}

// createXYZVFile returns a file which requires a defer close statement!
func createXYZVFile(filename string, stamped bool, start AbsoluteDate) *os.File {
	config := propConfig()
	if stamped {
		t := time.Now()
		filename = fmt.Sprintf("%s/prop-%s-%d-%02d-%02dT%02d.%02d.%02d.xyzv", config.outputDir, filename, t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second())
	} else {
		filename = fmt.Sprintf("%s/prop-%s.xyzv", config.outputDir, filename)
	}
	f, err := os.Create(filename)
	if err != nil {
		panic(err)
	}
	// Header
	f.WriteString(fmt.Sprintf(`# Creation date (UTC): %s
# Records are <jd> <x> <y> <z> <vel x> <vel y> <vel z>
#   Position in m
#   Velocity in m/s
#   Simulation time start (UTC): %s`, time.Now(), start))
	return f
}

// createCSVFile returns a file which requires a defer close statement!
func createCSVFile(filename string, stamped bool, start AbsoluteDate) *os.File {
	config := propConfig()
	if stamped {
		t := time.Now()
		filename = fmt.Sprintf("%s/orbital-elements-%s-%d-%02d-%02dT%02d.%02d.%02d.csv", config.outputDir, filename, t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second())
	} else {
		filename = fmt.Sprintf("%s/orbital-elements-%s.csv", config.outputDir, filename)
	}
	f, err := os.Create(filename)
	if err != nil {
		panic(err)
	}
	// Header
	f.WriteString(fmt.Sprintf(`# Creation date (UTC): %s
# Records are a, e, i, Ω, ω, ν. All angles are in degrees.
#   Simulation time start (UTC): %s
time,a,e,i,Omega,omega,nu`, time.Now(), start))
	return f
}

// StreamStates writes the states read from the channel to the configured
// files, one sample per committed step, until the channel is closed.
func StreamStates(conf ExportConfig, stateChan <-chan propagatedState) {
	var fXYZV, fCSV *os.File
	var started bool
	var last AbsoluteDate
	for state := range stateChan {
		if !started {
			started = true
			if conf.AsXYZV {
				fXYZV = createXYZVFile(conf.Filename, conf.Timestamp, state.Date)
			}
			if conf.AsCSV {
				fCSV = createCSVFile(conf.Filename, conf.Timestamp, state.Date)
			}
		}
		last = state.Date
		pv := state.SC.PVCoordinates()
		if conf.AsXYZV {
			asTxt := fmt.Sprintf("%f %f %f %f %f %f %f", state.Date.JD(),
				pv.Position[0], pv.Position[1], pv.Position[2],
				pv.Velocity[0], pv.Velocity[1], pv.Velocity[2])
			if _, err := fXYZV.WriteString("\n" + asTxt); err != nil {
				panic(err)
			}
		}
		if conf.AsCSV {
			kep := keplerianFromState(state.SC.Orbit)
			asTxt := fmt.Sprintf("%s,%.3f,%.6f,%.3f,%.3f,%.3f,%.3f", state.Date,
				kep.A(), kep.E(), Rad2deg(kep.I()), Rad2deg(kep.RAAN()),
				Rad2deg(kep.PerigeeArgument()), Rad2deg(kep.Anomaly(TrueAnomaly)))
			if _, err := fCSV.WriteString("\n" + asTxt); err != nil {
				panic(err)
			}
		}
	}
	if !started {
		return
	}
	if conf.AsXYZV {
		fXYZV.WriteString(fmt.Sprintf("\n# Simulation time end (UTC): %s\n", last))
		fXYZV.Close()
	}
	if conf.AsCSV {
		fCSV.WriteString(fmt.Sprintf("\n# Simulation time end (UTC): %s\n", last))
		fCSV.Close()
	}
}
