package chart

import (
	"fmt"
	"sort"

	"github.com/teranos/jyotish/bhava"
	"github.com/teranos/jyotish/drishti"
	"github.com/teranos/jyotish/graha"
)

// YogaKind is the traditional category of a detected yoga.
type YogaKind int

const (
	RajYoga YogaKind = iota
	DhanaYoga
	ParivartanaYoga
)

var yogaKindNames = map[YogaKind]string{
	RajYoga:         "Raj",
	DhanaYoga:       "Dhana",
	ParivartanaYoga: "Parivartana",
}

func (k YogaKind) String() string {
	if name, ok := yogaKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("YogaKind(%d)", int(k))
}

// Yoga is one detected combination with its participants. Detections always
// carry the grahas and houses that formed them; Detail says how.
type Yoga struct {
	Kind         YogaKind
	Name         string
	Participants []graha.Graha
	Houses       []int
	Detail       string
}

// detectYogas runs the three detectors in a fixed order so the yoga list is
// deterministic for identical inputs.
func detectYogas(c *Chart) []Yoga {
	yogas := detectRaj(c)
	yogas = append(yogas, detectDhana(c)...)
	yogas = append(yogas, detectParivartana(c)...)
	return yogas
}

type grahaPair struct {
	a, b graha.Graha
}

func orderedPair(a, b graha.Graha) grahaPair {
	if b < a {
		a, b = b, a
	}
	return grahaPair{a: a, b: b}
}

// detectRaj pairs every kendra lord with every trikona lord. A distinct pair
// that is conjunct or in mutual aspect forms the yoga; a graha lording both
// groups alone does not pair with itself (that case is the Yoga Karaka
// classification, not a Raj Yoga).
func detectRaj(c *Chart) []Yoga {
	kendraLords := lordsOf(c, bhava.IsKendra)
	trikonaLords := lordsOf(c, bhava.IsTrikona)

	seen := make(map[grahaPair]bool)
	var yogas []Yoga
	for _, k := range kendraLords {
		for _, t := range trikonaLords {
			if k == t {
				continue
			}
			pair := orderedPair(k, t)
			if seen[pair] {
				continue
			}
			kState, tState := c.grahas[k], c.grahas[t]
			switch {
			case kState.House == tState.House:
				seen[pair] = true
				yogas = append(yogas, Yoga{
					Kind:         RajYoga,
					Name:         "Raj Yoga",
					Participants: []graha.Graha{k, t},
					Houses:       []int{kState.House},
					Detail: fmt.Sprintf("%s and %s conjunct in house %d",
						k, t, kState.House),
				})
			case drishti.Mutual(c.aspects.OnGrahas, k, t):
				seen[pair] = true
				yogas = append(yogas, Yoga{
					Kind:         RajYoga,
					Name:         "Raj Yoga",
					Participants: []graha.Graha{k, t},
					Houses:       []int{kState.House, tState.House},
					Detail: fmt.Sprintf("%s in house %d and %s in house %d in mutual aspect",
						k, kState.House, t, tState.House),
				})
			}
		}
	}
	return yogas
}

// detectDhana pairs the primary wealth lords (houses 2 and 11) with each
// other and with the trikona wealth lords (houses 5 and 9). A pairing counts
// when conjunct or in sign exchange; 5 and 9 never pair with each other
// alone, a primary lord must anchor the yoga.
func detectDhana(c *Chart) []Yoga {
	primary := []int{2, 11}
	secondary := []int{5, 9}

	seen := make(map[grahaPair]bool)
	var yogas []Yoga
	for _, ph := range primary {
		p := c.bhavas[ph-1].Lord
		for _, oh := range append(primary, secondary...) {
			if oh == ph {
				continue
			}
			o := c.bhavas[oh-1].Lord
			if o == p {
				continue
			}
			pair := orderedPair(p, o)
			if seen[pair] {
				continue
			}
			pState, oState := c.grahas[p], c.grahas[o]
			switch {
			case pState.House == oState.House:
				seen[pair] = true
				yogas = append(yogas, Yoga{
					Kind:         DhanaYoga,
					Name:         "Dhana Yoga",
					Participants: []graha.Graha{p, o},
					Houses:       []int{pState.House},
					Detail: fmt.Sprintf("lords of houses %d and %d (%s, %s) conjunct in house %d",
						ph, oh, p, o, pState.House),
				})
			case inExchange(pState, oState):
				seen[pair] = true
				yogas = append(yogas, Yoga{
					Kind:         DhanaYoga,
					Name:         "Dhana Yoga",
					Participants: []graha.Graha{p, o},
					Houses:       []int{pState.House, oState.House},
					Detail: fmt.Sprintf("lords of houses %d and %d (%s, %s) in sign exchange",
						ph, oh, p, o),
				})
			}
		}
	}
	return yogas
}

// detectParivartana checks every unordered pair of sign-owning grahas for a
// symmetric exchange: each occupying a rasi ruled by the other. Nodes own no
// signs and can never participate.
func detectParivartana(c *Chart) []Yoga {
	all := graha.All()
	var yogas []Yoga
	for i := 0; i < len(all); i++ {
		for j := i + 1; j < len(all); j++ {
			a, b := c.grahas[all[i]], c.grahas[all[j]]
			if !inExchange(a, b) {
				continue
			}
			yogas = append(yogas, Yoga{
				Kind:         ParivartanaYoga,
				Name:         "Parivartana Yoga",
				Participants: []graha.Graha{a.Graha, b.Graha},
				Houses:       []int{a.House, b.House},
				Detail: fmt.Sprintf("%s in %s and %s in %s exchange signs",
					a.Graha, a.Sign, b.Graha, b.Sign),
			})
		}
	}
	return yogas
}

// inExchange reports a symmetric sign exchange between two placements.
func inExchange(a, b GrahaState) bool {
	return b.Graha.Owns(a.Sign) && a.Graha.Owns(b.Sign)
}

// lordsOf returns the distinct lords of the houses matching the group
// predicate, in house order.
func lordsOf(c *Chart, group func(int) bool) []graha.Graha {
	seen := make(map[graha.Graha]bool)
	var lords []graha.Graha
	for i := range c.bhavas {
		if !group(i + 1) {
			continue
		}
		lord := c.bhavas[i].Lord
		if seen[lord] {
			continue
		}
		seen[lord] = true
		lords = append(lords, lord)
	}
	sort.Slice(lords, func(i, j int) bool { return lords[i] < lords[j] })
	return lords
}
