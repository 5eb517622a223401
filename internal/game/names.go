package game

import "math/rand"

var namePrefixes = []string{
	"El", "La", "Don", "Doña", "Tío", "Tía", "Che", "San", "Gringo",
}

var nameBases = []string{
	"Tango", "Mate", "Gaucho", "Pampa", "Dulce", "Fernet", "Asado",
	"Pelusa", "Messi", "Diego", "Evita", "Gardel", "Maradona",
	"Birome", "Colectivo", "Choripán", "Alfajor", "Chimichurri",
	"Pato", "Truco", "Boludo", "Boliche", "Milonga",
	"Quilmes", "Malbec", "Che", "Pibe", "Flaco", "Gordo", "Negro",
	"Rubio", "Petiso", "Grandote", "Loco", "Capo", "Cráneo",
}

var nameSuffixes = []string{
	"Bailarín", "Copero", "Tanguero", "Asador", "Hincha", "Piola",
	"Criollo", "Porteño", "Cordobés", "Salteño", "Tucumano",
	"Chamigo", "Pariente", "Vecino", "Compadre", "Amigo",
}

// FunnyName generates a whimsical default display name for players who join
// without one.
func FunnyName() string {
	name := nameBases[rand.Intn(len(nameBases))]

	if rand.Intn(2) == 0 {
		name = namePrefixes[rand.Intn(len(namePrefixes))] + " " + name
	}
	if rand.Intn(2) == 0 {
		name = name + " " + nameSuffixes[rand.Intn(len(nameSuffixes))]
	}

	return name
}
