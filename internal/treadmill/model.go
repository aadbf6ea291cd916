package treadmill

// State is a treadmill operating mode
type State int

const (
	StateNone State = iota // Sentinel, never registered
	StateStart
	StateInit
	StateStandby
	StateDefault // Belt running
	StateDiagnostics
	StateAlterConfig
	StateEmergency
	StatePause
)

var stateNames = [...]string{
	StateNone:        "S_NO",
	StateStart:       "S_START",
	StateInit:        "S_INIT",
	StateStandby:     "S_STANDBY",
	StateDefault:     "S_DEFAULT",
	StateDiagnostics: "S_DIAGNOSTICS",
	StateAlterConfig: "S_ALTERCONFIG",
	StateEmergency:   "S_EMERGENCY",
	StatePause:       "S_PAUSE",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "S_UNKNOWN"
	}
	return stateNames[s]
}

// Event is a signal from the keyboard or a subsystem
type Event int

const (
	EventNone Event = iota // Sentinel, never matched
	EventInit
	EventTreadmill
	EventRunningStart
	EventRunningStop
	EventDiagnosticsStart
	EventDiagnosticsStop
	EventConfigChange
	EventConfigDone
	EventPause
	EventResume
	EventEmergencyStart
	EventEmergencyStop
)

var eventNames = [...]string{
	EventNone:             "E_NO",
	EventInit:             "E_INIT",
	EventTreadmill:        "E_TREADMILL",
	EventRunningStart:     "E_RUNNING_START",
	EventRunningStop:      "E_RUNNING_STOP",
	EventDiagnosticsStart: "E_DIAGNOSTICS_START",
	EventDiagnosticsStop:  "E_DIAGNOSTICS_STOP",
	EventConfigChange:     "E_CONFIG_CHANGE",
	EventConfigDone:       "E_CONFIG_DONE",
	EventPause:            "E_PAUSE",
	EventResume:           "E_RESUME",
	EventEmergencyStart:   "E_EMERGENCY_START",
	EventEmergencyStop:    "E_EMERGENCY_STOP",
}

func (e Event) String() string {
	if e < 0 || int(e) >= len(eventNames) {
		return "E_UNKNOWN"
	}
	return eventNames[e]
}

// Stats are the belt readings and targets
type Stats struct {
	Speed         float64 // km/h
	Incline       float64 // percent
	Distance      float64 // km
	TargetSpeed   float64
	TargetIncline float64
}

// Limits for the configurable targets
const (
	MaxSpeed       = 20.0
	MaxIncline     = 15.0
	SpeedStep      = 0.5
	InclineStep    = 1.0
	DefaultSpeed   = 6.0
	DefaultIncline = 0.0
)
