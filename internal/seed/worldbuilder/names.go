package worldbuilder

// Family surnames common among mid-1800s trail emigrants.
var surnames = []string{
	"Harrow", "Whitfield", "Callahan", "Bowen", "Merritt",
	"Ashby", "Crandall", "Holloway", "Pratt", "Sessions",
	"Kimball", "Tanner", "Redmond", "Gearhart", "Stokes",
	"Farnsworth", "Oakes", "Birch", "Larsen", "Quigley",
}

var maleNames = []string{
	"Eli", "Hiram", "Jedediah", "Samuel", "Amos",
	"Caleb", "Ezra", "Thaddeus", "Gideon", "Lorenzo",
	"Wilford", "Parley", "Heber", "Orson", "Brigham",
}

var femaleNames = []string{
	"Jane", "Martha", "Eliza", "Abigail", "Sarah",
	"Clara", "Harriet", "Lucinda", "Patience", "Emmeline",
	"Zina", "Vilate", "Drusilla", "Mercy", "Adeline",
}

var traits = []string{
	"stubborn", "resourceful", "devout", "quick-tempered",
	"patient", "superstitious", "generous", "wary of strangers",
	"cheerful", "brooding", "practical", "restless",
}

var skills = []string{
	"blacksmithing", "midwifery", "sharpshooting", "carpentry",
	"herbal medicine", "wagon repair", "animal husbandry",
	"river fording", "trail scouting", "quilting", "bookkeeping",
}

var assets = []string{
	"covered wagon", "ox team", "Hawken rifle", "milk cow",
	"cast-iron stove", "family Bible", "seed corn", "gold watch",
	"spare axle", "barrel of flour", "fiddle",
}

// Short biography templates for generated characters.
var bioTemplates = []string{
	"Left a failing farm in Missouri for the promise of western land.",
	"Buried two children to cholera before the family reached the Platte.",
	"Keeps the company's spirits up with fiddle tunes at evening camp.",
	"Joined the wagon train after the mill burned down back east.",
	"Reads the weather better than anyone else in the company.",
	"Quietly carries the family savings sewn into a coat lining.",
	"Walked most of the way from Nauvoo pushing a handcart.",
	"Trades remedies and news with every train the company passes.",
}
