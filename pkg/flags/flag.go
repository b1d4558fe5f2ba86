package flags

// Flag describes a single command-line flag independent of its Cobra registration.
type Flag interface {
	GetName() string
	GetShorthand() string
	GetDescription() string
	GetDefault() any
	IsRequired() bool
	GetEnvVars() []string
	GetValidValues() []string
	// GetViperKey returns an explicit Viper key, or "" to derive one from the flag name.
	GetViperKey() string
}

// StringFlag is a string-valued flag.
type StringFlag struct {
	Name        string
	Shorthand   string
	Default     string
	Description string
	Required    bool
	EnvVars     []string
	ValidValues []string
	ViperKey    string
}

func (f *StringFlag) GetName() string          { return f.Name }
func (f *StringFlag) GetShorthand() string     { return f.Shorthand }
func (f *StringFlag) GetDescription() string   { return f.Description }
func (f *StringFlag) GetDefault() any          { return f.Default }
func (f *StringFlag) IsRequired() bool         { return f.Required }
func (f *StringFlag) GetEnvVars() []string     { return f.EnvVars }
func (f *StringFlag) GetValidValues() []string { return f.ValidValues }
func (f *StringFlag) GetViperKey() string      { return f.ViperKey }

// BoolFlag is a boolean flag.
type BoolFlag struct {
	Name        string
	Shorthand   string
	Default     bool
	Description string
	EnvVars     []string
	ViperKey    string
}

func (f *BoolFlag) GetName() string          { return f.Name }
func (f *BoolFlag) GetShorthand() string     { return f.Shorthand }
func (f *BoolFlag) GetDescription() string   { return f.Description }
func (f *BoolFlag) GetDefault() any          { return f.Default }
func (f *BoolFlag) IsRequired() bool         { return false }
func (f *BoolFlag) GetEnvVars() []string     { return f.EnvVars }
func (f *BoolFlag) GetValidValues() []string { return nil }
func (f *BoolFlag) GetViperKey() string      { return f.ViperKey }

// IntFlag is an integer flag.
type IntFlag struct {
	Name        string
	Shorthand   string
	Default     int
	Description string
	Required    bool
	EnvVars     []string
	ViperKey    string
}

func (f *IntFlag) GetName() string          { return f.Name }
func (f *IntFlag) GetShorthand() string     { return f.Shorthand }
func (f *IntFlag) GetDescription() string   { return f.Description }
func (f *IntFlag) GetDefault() any          { return f.Default }
func (f *IntFlag) IsRequired() bool         { return f.Required }
func (f *IntFlag) GetEnvVars() []string     { return f.EnvVars }
func (f *IntFlag) GetValidValues() []string { return nil }
func (f *IntFlag) GetViperKey() string      { return f.ViperKey }

// StringSliceFlag is a repeatable, comma-separated list flag.
type StringSliceFlag struct {
	Name        string
	Shorthand   string
	Default     []string
	Description string
	Required    bool
	EnvVars     []string
	ValidValues []string
	ViperKey    string
}

func (f *StringSliceFlag) GetName() string          { return f.Name }
func (f *StringSliceFlag) GetShorthand() string     { return f.Shorthand }
func (f *StringSliceFlag) GetDescription() string   { return f.Description }
func (f *StringSliceFlag) GetDefault() any          { return f.Default }
func (f *StringSliceFlag) IsRequired() bool         { return f.Required }
func (f *StringSliceFlag) GetEnvVars() []string     { return f.EnvVars }
func (f *StringSliceFlag) GetValidValues() []string { return f.ValidValues }
func (f *StringSliceFlag) GetViperKey() string      { return f.ViperKey }
