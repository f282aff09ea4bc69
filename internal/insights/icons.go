package insights

const (
	iconRain    = "🌧"
	iconSnow    = "🌨"
	iconFog     = "🌫"
	iconThunder = "⛈"
	iconCloud   = "☁"
	iconDefault = "🌤"
)

// conditionIcons is keyed by the API's condition code
var conditionIcons = map[int]string{
	1003: "⛅",
	1006: iconCloud, 1009: iconCloud,
	1030: iconFog, 1135: iconFog, 1147: iconFog,
	1063: "🌦",
	1066: iconSnow, 1069: iconSnow, 1114: iconSnow, 1117: iconSnow,
	1087: iconThunder,
	1150: iconRain, 1153: iconRain, 1168: iconRain, 1171: iconRain,
	1180: iconRain, 1183: iconRain, 1186: iconRain, 1189: iconRain,
	1192: iconRain, 1195: iconRain, 1198: iconRain, 1201: iconRain,
	1204: iconSnow, 1207: iconSnow, 1210: iconSnow, 1213: iconSnow,
	1216: iconSnow, 1219: iconSnow, 1222: iconSnow, 1225: iconSnow,
	1237: iconSnow,
	1240: iconRain, 1243: iconRain, 1246: iconRain,
	1249: iconSnow, 1252: iconSnow, 1255: iconSnow, 1258: iconSnow,
	1261: iconSnow, 1264: iconSnow,
	1273: iconThunder, 1276: iconThunder, 1279: iconThunder, 1282: iconThunder,
}

// WeatherIcon returns a glyph for a condition code. Clear sky (1000) depends on
// whether it is day.
func WeatherIcon(code int, isDay bool) string {
	if code == 1000 {
		if isDay {
			return "☀"
		}
		return "🌙"
	}
	if icon, ok := conditionIcons[code]; ok {
		return icon
	}
	return iconDefault
}
