package urlcmd

import (
	"slices"
	"strconv"

	"github.com/jongio/url-core/cliout"
	"github.com/jongio/url-core/url"
)

// Components is the flattened view of a URL used for machine output.
type Components struct {
	URL      string            `json:"url" yaml:"url"`
	Scheme   string            `json:"scheme" yaml:"scheme"`
	Host     string            `json:"host" yaml:"host"`
	Name     string            `json:"name" yaml:"name"`
	Domains  []string          `json:"domains" yaml:"domains"`
	Port     *uint16           `json:"port,omitempty" yaml:"port,omitempty"`
	Path     string            `json:"path,omitempty" yaml:"path,omitempty"`
	Segments []string          `json:"segments,omitempty" yaml:"segments,omitempty"`
	Query    map[string]string `json:"query,omitempty" yaml:"query,omitempty"`
	Fragment string            `json:"fragment,omitempty" yaml:"fragment,omitempty"`
}

func componentsOf(u url.URL) Components {
	domains := make([]string, 0, len(u.Host.Domains))
	for _, d := range u.Host.Domains {
		domains = append(domains, d.String())
	}
	return Components{
		URL:      u.String(),
		Scheme:   u.Scheme.String(),
		Host:     u.Host.String(),
		Name:     u.Host.Name.String(),
		Domains:  domains,
		Port:     u.Port,
		Path:     u.Path.String(),
		Segments: u.Path.Segments,
		Query:    u.Query,
		Fragment: u.Fragment,
	}
}

func printComponents(c Components) {
	cliout.Header("URL Components")
	cliout.Label("URL", c.URL)
	cliout.Label("Scheme", c.Scheme)
	cliout.Label("Host", c.Host)
	if c.Port != nil {
		cliout.Label("Port", strconv.Itoa(int(*c.Port)))
	}
	if c.Path != "" {
		cliout.Label("Path", c.Path)
	}
	keys := make([]string, 0, len(c.Query))
	for k := range c.Query {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		cliout.Label("Query", k+" = "+c.Query[k])
	}
	if c.Fragment != "" {
		cliout.Label("Fragment", c.Fragment)
	}
}
