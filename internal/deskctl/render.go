package deskctl

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/aussiebroadwan/clientdesk/pkg/desksdk"
)

type theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Header   lipgloss.Style
	Cell     lipgloss.Style
	Warning  lipgloss.Style
	Card     lipgloss.Style

	Active   lipgloss.Style
	Expiring lipgloss.Style
	Expired  lipgloss.Style
	Admin    lipgloss.Style
	Standard lipgloss.Style
}

func defaultTheme() theme {
	badge := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	return theme{
		Title:    lipgloss.NewStyle().Bold(true),
		Subtitle: lipgloss.NewStyle().Faint(true),
		Header:   lipgloss.NewStyle().Bold(true).Padding(0, 1),
		Cell:     lipgloss.NewStyle().Padding(0, 1),
		Warning:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Card: lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")),

		Active:   badge.Foreground(lipgloss.Color("42")),
		Expiring: badge.Foreground(lipgloss.Color("214")),
		Expired:  badge.Foreground(lipgloss.Color("196")),
		Admin:    badge.Foreground(lipgloss.Color("63")),
		Standard: badge.Faint(true),
	}
}

// expirationBadge colours the derived expiration text.
func (t theme) expirationBadge(e desksdk.Expiration) string {
	switch e.Status {
	case "expired":
		return t.Expired.Render(e.Text)
	case "expiring":
		return t.Expiring.Render(e.Text)
	default:
		return t.Active.Render(e.Text)
	}
}

func (t theme) roleBadge(role string) string {
	if role == "admin" {
		return t.Admin.Render(role)
	}
	return t.Standard.Render(role)
}

func (t theme) table(headers []string, rows [][]string) string {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(t.Subtitle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return t.Header
			}
			return t.Cell
		}).
		String()
}

func (t theme) printTable(w io.Writer, empty string, headers []string, rows [][]string) {
	if len(rows) == 0 {
		fmt.Fprintln(w, t.Subtitle.Render(empty))
		return
	}
	fmt.Fprintln(w, t.table(headers, rows))
}

func (t theme) printClients(w io.Writer, clients []desksdk.Client) {
	rows := make([][]string, len(clients))
	for i, c := range clients {
		rows[i] = []string{c.ID, c.Name, c.Email, c.Company, c.Phone, c.CreatedAt.Format("2006-01-02")}
	}
	t.printTable(w, "(no clients)", []string{"ID", "Name", "Email", "Company", "Phone", "Created"}, rows)
}

func (t theme) printDomains(w io.Writer, domains []desksdk.Domain) {
	rows := make([][]string, len(domains))
	for i, d := range domains {
		rows[i] = []string{d.ID, d.DomainName, d.ClientName, d.Registrar, d.ExpirationDate, d.Status, t.expirationBadge(d.Expiration)}
	}
	t.printTable(w, "(no domains)", []string{"ID", "Domain", "Client", "Registrar", "Expires", "Status", "Expiration"}, rows)
}

func (t theme) printHosting(w io.Writer, hosting []desksdk.Hosting) {
	rows := make([][]string, len(hosting))
	for i, h := range hosting {
		rows[i] = []string{h.ID, h.ServiceName, h.ClientName, h.Provider, h.PlanType, h.ExpirationDate, h.Status, t.expirationBadge(h.Expiration)}
	}
	t.printTable(w, "(no hosting services)", []string{"ID", "Service", "Client", "Provider", "Plan", "Expires", "Status", "Expiration"}, rows)
}

func (t theme) printUsers(w io.Writer, users []desksdk.User, self *desksdk.User) {
	rows := make([][]string, len(users))
	for i, u := range users {
		name := u.Name
		if self != nil && u.ID == self.ID {
			name += " (you)"
		}
		rows[i] = []string{u.ID, name, u.Email, t.roleBadge(u.Role), u.CreatedAt.Format("2006-01-02")}
	}
	t.printTable(w, "(no users)", []string{"ID", "Name", "Email", "Role", "Joined"}, rows)
}

func (t theme) printStats(w io.Writer, s desksdk.DashboardResponse) {
	lines := []string{
		t.Title.Render("Dashboard"),
		"",
		"Clients            " + strconv.Itoa(s.TotalClients),
		"Active domains     " + strconv.Itoa(s.ActiveDomains),
		"Active hosting     " + strconv.Itoa(s.ActiveHosting),
		"Expiring (30 days) " + t.Expiring.UnsetPadding().Render(strconv.Itoa(s.ExpiringServices)),
	}
	if s.TotalUsers != nil {
		lines = append(lines, "Users              "+strconv.Itoa(*s.TotalUsers))
	}
	fmt.Fprintln(w, t.Card.Render(lipgloss.JoinVertical(lipgloss.Left, lines...)))
}
