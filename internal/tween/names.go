package tween

var byName = map[string]Easing{
	"linear":         Linear,
	"quad-in":        QuadIn,
	"quad-out":       QuadOut,
	"quad-in-out":    QuadInOut,
	"cubic-in":       CubicIn,
	"cubic-out":      CubicOut,
	"cubic-in-out":   CubicInOut,
	"quart-in":       QuartIn,
	"quart-out":      QuartOut,
	"quart-in-out":   QuartInOut,
	"quint-in":       QuintIn,
	"quint-out":      QuintOut,
	"quint-in-out":   QuintInOut,
	"sine-in":        SineIn,
	"sine-out":       SineOut,
	"sine-in-out":    SineInOut,
	"expo-in":        ExpoIn,
	"expo-out":       ExpoOut,
	"expo-in-out":    ExpoInOut,
	"circ-in":        CircIn,
	"circ-out":       CircOut,
	"circ-in-out":    CircInOut,
	"elastic-in":     ElasticIn,
	"elastic-out":    ElasticOut,
	"elastic-in-out": ElasticInOut,
	"back-in":        BackIn,
	"back-out":       BackOut,
	"back-in-out":    BackInOut,
	"bounce-in":      BounceIn,
	"bounce-out":     BounceOut,
	"bounce-in-out":  BounceInOut,
}

// ByName looks an easing function up by its config name.
func ByName(name string) (Easing, bool) {
	e, ok := byName[name]
	return e, ok
}

// Names returns every registered easing name (unordered).
func Names() []string {
	out := make([]string, 0, len(byName))
	for n := range byName {
		out = append(out, n)
	}
	return out
}
