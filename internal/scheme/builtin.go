package scheme

// The built-in schemes. Grayscale and Default define only the text roles;
// the Equilibrium Gray variants also carry red/green/blue accents.
var (
	GrayscaleDark = Scheme{
		Name: "Grayscale Dark",
		Colors: map[Role]string{
			RoleBackground: "#101010",
			RoleForeground: "#b9b9b9",
			RoleComment:    "#525252",
		},
	}

	GrayscaleLight = Scheme{
		Name: "Grayscale Light",
		Colors: map[Role]string{
			RoleBackground: "#f7f7f7",
			RoleForeground: "#464646",
			RoleComment:    "#ababab",
		},
	}

	EquilibriumGrayDark = Scheme{
		Name: "Equilibrium Gray Dark",
		Colors: map[Role]string{
			RoleBackground: "#111111",
			RoleForeground: "#ababab",
			RoleComment:    "#777777",
			RoleRed:        "#f04339",
			RoleGreen:      "#7f8b00",
			RoleBlue:       "#008dd1",
		},
	}

	EquilibriumGrayLight = Scheme{
		Name: "Equilibrium Gray Light",
		Colors: map[Role]string{
			RoleBackground: "#f1f1f1",
			RoleForeground: "#474747",
			RoleComment:    "#777777",
			RoleRed:        "#d02023",
			RoleGreen:      "#637200",
			RoleBlue:       "#0073b5",
		},
	}

	DefaultDark = Scheme{
		Name: "Default Dark",
		Colors: map[Role]string{
			RoleBackground: "#181818",
			RoleForeground: "#d8d8d8",
			RoleComment:    "#585858",
		},
	}

	DefaultLight = Scheme{
		Name: "Default Light",
		Colors: map[Role]string{
			RoleBackground: "#f8f8f8",
			RoleForeground: "#383838",
			RoleComment:    "#b8b8b8",
		},
	}
)

// All returns every built-in scheme in report order.
func All() []Scheme {
	return []Scheme{
		GrayscaleDark,
		GrayscaleLight,
		EquilibriumGrayDark,
		EquilibriumGrayLight,
		DefaultDark,
		DefaultLight,
	}
}

// ByName looks up a built-in scheme by its display name.
func ByName(name string) (Scheme, bool) {
	for _, s := range All() {
		if s.Name == name {
			return s, true
		}
	}
	return Scheme{}, false
}
