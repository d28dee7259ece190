package syntax

// Dialect identifies a Whitespace assembly dialect.
type Dialect uint8

const (
	Burghard Dialect = iota
	CensoredUsername
	Palaiologos
	Voliva
	WConrad
	Wsf
)

var dialectNames = [...]string{
	Burghard:         "Burghard",
	CensoredUsername: "CensoredUsername",
	Palaiologos:      "Palaiologos",
	Voliva:           "voliva",
	WConrad:          "wconrad",
	Wsf:              "wsf",
}

// String returns the name of the dialect.
func (d Dialect) String() string {
	if int(d) < len(dialectNames) {
		return dialectNames[d]
	}
	return "unknown"
}
