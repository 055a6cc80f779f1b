package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/yndnr/whitehole-go/internal/cli/output"
	"github.com/yndnr/whitehole-go/internal/compat"
	"github.com/yndnr/whitehole-go/internal/core/domain"
)

// DefaultExportFile is offered when the export or import prompt is left empty.
const DefaultExportFile = "white_hole_config.json"

// Registry is the set of registry operations the menu drives.
type Registry interface {
	MaxVLANs() int
	CreateVLAN(ctx context.Context, id int, name, description string) error
	GetVLAN(ctx context.Context, id int) (*domain.VLAN, error)
	DeleteVLAN(ctx context.Context, id int) error
	BulkCreateVLANs(ctx context.Context, start, end int, prefix string) int
	StoreValue(ctx context.Context, key string, value any) *domain.Entry
	RetrieveValue(ctx context.Context, key string) (any, error)
	Stats(ctx context.Context) domain.Stats
	ExportConfig(ctx context.Context, path string) error
	ImportConfig(ctx context.Context, path string) (int, error)
}

// Decorator reports Windows 16 capabilities and annotates records for
// display.
type Decorator interface {
	Capabilities() compat.Capabilities
	Optimize(v *domain.VLAN) (*compat.OptimizedVLAN, error)
}

// Menu is the interactive management loop.
type Menu struct {
	reg       Registry
	caps      Decorator
	input     *bufio.Reader
	printer   *output.Printer
	formatter output.Formatter
}

// Option configures a Menu.
type Option func(*Menu)

// WithInput sets the input reader (default os.Stdin).
func WithInput(r io.Reader) Option {
	return func(m *Menu) {
		m.input = bufio.NewReader(r)
	}
}

// WithPrinter sets the output printer (default uncolored stdout).
func WithPrinter(p *output.Printer) Option {
	return func(m *Menu) {
		m.printer = p
	}
}

// WithFormatter sets how records and statistics are rendered.
func WithFormatter(f output.Formatter) Option {
	return func(m *Menu) {
		m.formatter = f
	}
}

// New creates a menu over reg and caps.
func New(reg Registry, caps Decorator, opts ...Option) *Menu {
	m := &Menu{
		reg:       reg,
		caps:      caps,
		input:     bufio.NewReader(os.Stdin),
		printer:   output.NewPrinter(os.Stdout, false),
		formatter: &output.TableFormatter{},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

var errInvalidNumber = errors.New("invalid number")

// Run shows the menu until the user exits, input ends or ctx is cancelled.
func (m *Menu) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		m.showOptions()
		choice, err := m.prompt("Select an option (0-10): ")
		if errors.Is(err, io.EOF) {
			m.printer.Println("")
			return nil
		}
		if err != nil {
			return err
		}

		done, err := m.dispatch(ctx, choice)
		switch {
		case errors.Is(err, io.EOF):
			m.printer.Println("")
			return nil
		case errors.Is(err, errInvalidNumber):
			m.printer.Fail("Please enter a valid number")
		case err != nil:
			return err
		}
		if done {
			return nil
		}
	}
}

func (m *Menu) showOptions() {
	m.printer.Println("")
	m.printer.Banner("White Hole Storage Management Menu")
	for _, line := range []string{
		"1. View System Statistics",
		"2. Create VLAN",
		"3. View VLAN",
		"4. Store Data",
		"5. Retrieve Data",
		"6. Bulk Create VLANs",
		"7. Export Configuration",
		"8. Windows 16 Capabilities",
		"9. Delete VLAN",
		"10. Import Configuration",
		"0. Exit",
	} {
		m.printer.Println("%s", line)
	}
	m.printer.Println("%s", strings.Repeat("-", 80))
}

func (m *Menu) dispatch(ctx context.Context, choice string) (bool, error) {
	switch strings.ToLower(choice) {
	case "1":
		return false, m.showStats(ctx)
	case "2":
		return false, m.createVLAN(ctx)
	case "3":
		return false, m.viewVLAN(ctx)
	case "4":
		return false, m.storeData(ctx)
	case "5":
		return false, m.retrieveData(ctx)
	case "6":
		return false, m.bulkCreate(ctx)
	case "7":
		return false, m.export(ctx)
	case "8":
		return false, m.showCapabilities()
	case "9":
		return false, m.deleteVLAN(ctx)
	case "10":
		return false, m.importConfig(ctx)
	case "0", "exit", "quit":
		m.printer.Println("\nShutting down White Hole Storage System...")
		m.printer.Println("Goodbye!")
		return true, nil
	default:
		m.printer.Println("Invalid option. Please try again.")
		return false, nil
	}
}

func (m *Menu) showStats(ctx context.Context) error {
	m.printer.Println("\nSystem Statistics:")
	return m.formatter.Format(m.printer.Writer(), m.reg.Stats(ctx))
}

func (m *Menu) createVLAN(ctx context.Context) error {
	id, err := m.promptInt(fmt.Sprintf("Enter VLAN ID (1-%d): ", m.reg.MaxVLANs()))
	if err != nil {
		return err
	}
	name, err := m.prompt("Enter VLAN name: ")
	if err != nil {
		return err
	}
	desc, err := m.prompt("Enter VLAN description: ")
	if err != nil {
		return err
	}

	if err := m.reg.CreateVLAN(ctx, id, name, desc); err != nil {
		m.printer.Fail("Failed to create VLAN %d: %s", id, reason(err))
		return nil
	}
	m.printer.OK("VLAN %d created successfully", id)
	return nil
}

func (m *Menu) viewVLAN(ctx context.Context) error {
	id, err := m.promptInt("Enter VLAN ID to view: ")
	if err != nil {
		return err
	}

	vlan, err := m.reg.GetVLAN(ctx, id)
	if err != nil {
		m.printer.Println("VLAN %d not found", id)
		return nil
	}
	optimized, err := m.caps.Optimize(vlan)
	if err != nil {
		return err
	}
	m.printer.Println("\nVLAN %d Details:", id)
	return m.formatter.Format(m.printer.Writer(), optimized)
}

func (m *Menu) deleteVLAN(ctx context.Context) error {
	id, err := m.promptInt("Enter VLAN ID to delete: ")
	if err != nil {
		return err
	}

	if err := m.reg.DeleteVLAN(ctx, id); err != nil {
		m.printer.Fail("Failed to delete VLAN %d: %s", id, reason(err))
		return nil
	}
	m.printer.OK("VLAN %d deleted", id)
	return nil
}

func (m *Menu) storeData(ctx context.Context) error {
	key, err := m.prompt("Enter storage key: ")
	if err != nil {
		return err
	}
	value, err := m.prompt("Enter value: ")
	if err != nil {
		return err
	}

	m.reg.StoreValue(ctx, key, value)
	m.printer.OK("Data stored: %s", key)
	return nil
}

func (m *Menu) retrieveData(ctx context.Context) error {
	key, err := m.prompt("Enter storage key: ")
	if err != nil {
		return err
	}

	value, err := m.reg.RetrieveValue(ctx, key)
	if err != nil {
		m.printer.Println("Key not found: %s", key)
		return nil
	}
	m.printer.Println("Retrieved: %s = %v", key, value)
	return nil
}

func (m *Menu) bulkCreate(ctx context.Context) error {
	start, err := m.promptInt("Enter start VLAN ID: ")
	if err != nil {
		return err
	}
	end, err := m.promptInt("Enter end VLAN ID: ")
	if err != nil {
		return err
	}
	prefix, err := m.prompt("Enter VLAN name prefix: ")
	if err != nil {
		return err
	}

	created := m.reg.BulkCreateVLANs(ctx, start, end, prefix)
	m.printer.OK("Created %d VLANs", created)
	return nil
}

func (m *Menu) export(ctx context.Context) error {
	path, err := m.promptFile("Enter filename (default: " + DefaultExportFile + "): ")
	if err != nil {
		return err
	}

	if err := m.reg.ExportConfig(ctx, path); err != nil {
		m.printer.Fail("Failed to export configuration: %s", reason(err))
		return nil
	}
	m.printer.OK("Configuration exported to %s", path)
	return nil
}

func (m *Menu) importConfig(ctx context.Context) error {
	path, err := m.promptFile("Enter filename (default: " + DefaultExportFile + "): ")
	if err != nil {
		return err
	}

	n, err := m.reg.ImportConfig(ctx, path)
	if err != nil {
		m.printer.Fail("Failed to import configuration: %s", reason(err))
		return nil
	}
	m.printer.OK("Imported %d VLANs from %s", n, path)
	return nil
}

func (m *Menu) showCapabilities() error {
	m.printer.Println("\nWindows 16 Capabilities:")
	return m.formatter.Format(m.printer.Writer(), m.caps.Capabilities())
}

func (m *Menu) prompt(label string) (string, error) {
	fmt.Fprint(m.printer.Writer(), label)

	line, err := m.input.ReadString('\n')
	if err != nil && (line == "" || !errors.Is(err, io.EOF)) {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (m *Menu) promptInt(label string) (int, error) {
	s, err := m.prompt(label)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errInvalidNumber
	}
	return n, nil
}

func (m *Menu) promptFile(label string) (string, error) {
	path, err := m.prompt(label)
	if err != nil {
		return "", err
	}
	if path == "" {
		path = DefaultExportFile
	}
	return path, nil
}

// reason returns the message of a domain error without its code.
func reason(err error) string {
	var de *domain.DomainError
	if errors.As(err, &de) {
		if de.Details != "" {
			return de.Message + ": " + de.Details
		}
		return de.Message
	}
	return err.Error()
}
