package verdict

import (
	"reflect"

	"github.com/tarantool/go-verdict/internal/registry"
	"github.com/tarantool/go-verdict/site"
)

// DefaultSiteTypeName is the wire name of *site.Site.
const DefaultSiteTypeName = "site.Site"

//nolint:gochecknoglobals
var sites = newSites()

func newSites() *registry.Registry[Site] {
	reg := registry.New[Site]()
	reg.Register(DefaultSiteTypeName, reflect.TypeFor[*site.Site]())

	return reg
}

// RegisterSite makes sites of type T travel under name.
// Both sides of a transport must register the same types.
func RegisterSite[T Site](name string) {
	if name == "" {
		panic("verdict: empty site type name")
	}

	sites.Register(name, reflect.TypeFor[T]())
}
