package booking

// Room and Resource are closed sets. The stored value is the German label;
// the wire key is the uppercase identifier clients get from the meta
// endpoint (requests carry keys, responses carry labels).

type Room string

const (
	RoomWolf     Room = "Wolf"
	RoomHermelin Room = "Hermelin"
	RoomFuchs    Room = "Fuchs"
	RoomBiber    Room = "Biber"
)

type Resource string

const (
	ResourceSauna Resource = "Sauna"
	ResourceGrill Resource = "Grillhütte"
)

var roomKeys = map[string]Room{
	"WOLF":     RoomWolf,
	"HERMELIN": RoomHermelin,
	"FUCHS":    RoomFuchs,
	"BIBER":    RoomBiber,
}

var resourceKeys = map[string]Resource{
	"SAUNA": ResourceSauna,
	"GRILL": ResourceGrill,
}

func Rooms() []Room {
	return []Room{RoomWolf, RoomHermelin, RoomFuchs, RoomBiber}
}

func Resources() []Resource {
	return []Resource{ResourceSauna, ResourceGrill}
}

func (r Room) String() string {
	return string(r)
}

func (r Room) IsValid() bool {
	switch r {
	case RoomWolf, RoomHermelin, RoomFuchs, RoomBiber:
		return true
	default:
		return false
	}
}

func (r Room) Key() string {
	for k, v := range roomKeys {
		if v == r {
			return k
		}
	}
	return ""
}

func (r Resource) String() string {
	return string(r)
}

func (r Resource) IsValid() bool {
	switch r {
	case ResourceSauna, ResourceGrill:
		return true
	default:
		return false
	}
}

func (r Resource) Key() string {
	for k, v := range resourceKeys {
		if v == r {
			return k
		}
	}
	return ""
}

// ParseRoom resolves a wire key ("WOLF") to a Room.
func ParseRoom(key string) (Room, error) {
	if r, ok := roomKeys[key]; ok {
		return r, nil
	}
	return "", ErrInvalidInput
}

// ParseResource resolves a wire key ("SAUNA") to a Resource.
func ParseResource(key string) (Resource, error) {
	if r, ok := resourceKeys[key]; ok {
		return r, nil
	}
	return "", ErrInvalidInput
}
