package pdf

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/gompdf/danfe/internal/format"
	"github.com/gompdf/danfe/internal/layout"
	"github.com/gompdf/danfe/internal/logger"
	"github.com/gompdf/danfe/internal/pagination"
	"github.com/gompdf/danfe/internal/parser/nfe"
)

// section draws one fixed block of a DANFE page
type section func(c *canvas, s *session)

// sheet lists the sections of an orientation
type sheet struct {
	// first holds every fixed section of the first page, in drawing order
	first []section
	// header is repeated on continuation pages
	header section
	rule   rowRule
}

var sheets = map[layout.Orientation]sheet{
	layout.OrientationPortrait: {
		first: []section{
			portraitReceipt,
			portraitIssuer,
			portraitRecipient,
			portraitBilling,
			portraitTaxes,
			portraitTransport,
			portraitAdditional,
		},
		header: portraitIssuer,
		rule:   rowRule{dash: 0.5, space: 0.5, gray: true},
	},
	layout.OrientationLandscape: {
		first: []section{
			landscapeReceipt,
			landscapeIssuer,
			landscapeRecipient,
			landscapeBilling,
			landscapeTaxes,
			landscapeTransport,
			landscapeAdditional,
		},
		header: landscapeIssuer,
		rule:   rowRule{dash: 1, space: 1},
	},
}

// session is the state of one invoice while it is drawn
type session struct {
	id      string
	key     string
	inv     *nfe.Invoice
	geo     layout.Geometry
	columns layout.Columns
	items   []layout.LineItem
	plan    pagination.Plan
	logo    bool
	debug   bool

	// page is the page being drawn, 1 based
	page      int
	emitY     float64
	productsY float64

	number   string
	series   string
	receipt  string
	protocol string
}

func (r *Renderer) newSession(inv *nfe.Invoice) *session {
	m := r.measurer
	if m == nil {
		m = layout.DescriptionMeasurer()
	}

	geo := layout.NewGeometry(layout.OrientationFor(inv.PrintType()), r.Receipt)
	columns := layout.ColumnsForPage(geo.Orientation, r.Regime)
	items := layout.BuildItems(inv.Items, m, columns.DescriptionWidth())

	engine := pagination.NewEngine()
	engine.SetOptions(pagination.OptionsFor(geo))

	s := &session{
		id:      uuid.NewString(),
		key:     inv.Key(),
		inv:     inv,
		geo:     geo,
		columns: columns,
		items:   items,
		plan:    engine.Paginate(items),
		logo:    r.hasLogo(),
		debug:   r.Debug,
		number:  format.NFNumber(inv.Number()),
		series:  inv.Series(),
	}
	s.receipt = receiptText(inv)
	s.protocol = protocolText(inv)
	return s
}

func (s *session) pages() int { return s.plan.PageCount() }

// draw emits every page of the plan. The first page carries all the fixed
// sections; the others repeat the issuer box above the table.
func (s *session) draw(c *canvas) {
	sh := sheets[s.geo.Orientation]
	size := c.pdf.GetPageSizeStr("A4")

	for i, a := range s.plan {
		s.page = i + 1
		s.emitY, s.productsY = s.geo.Offsets(s.page)
		c.pdf.AddPageFormat(string(s.geo.Orientation), size)

		if s.page == 1 {
			for _, draw := range sh.first {
				draw(c, s)
			}
		} else {
			sh.header(c, s)
		}
		s.drawProducts(c, a, sh.rule)

		if s.debug {
			logger.Debug("page drawn", "session", s.id, "page", s.page, "items", fmt.Sprintf("%d-%d", a.Start, a.End), "rows", a.Rows, "capacity", a.Capacity)
		}
	}
}

func (s *session) pageLabel() string {
	return fmt.Sprintf("Página %d de %d", s.page, s.pages())
}

func (s *session) emit(tag string) string { return s.inv.Emit.Text(tag) }
func (s *session) dest(tag string) string { return s.inv.Dest.Text(tag) }
func (s *session) ide(tag string) string  { return s.inv.Ide.Text(tag) }

func (s *session) total(tag string) string {
	return format.Number(s.inv.Total.Text(tag), 2)
}

// carrier returns a field of transp/transporta
func (s *session) carrier(tag string) string {
	return s.inv.Transp.Find("transporta").Text(tag)
}

func (s *session) carrierDocument() string {
	if doc := s.carrier("CNPJ"); doc != "" {
		return format.CPFCNPJ(doc)
	}
	return format.CPFCNPJ(s.carrier("CPF"))
}

func (s *session) vehicle(tag string) string {
	return s.inv.Transp.Find("veicTransp").Text(tag)
}

func (s *session) volume(tag string) string {
	return s.inv.Transp.Find("vol").Text(tag)
}

// recipientName is replaced by a notice on homologation invoices
func (s *session) recipientName() string {
	if s.inv.IsHomologation() {
		return "NF-E EMITIDA EM AMBIENTE DE HOMOLOGACAO - SEM VALOR FISCAL"
	}
	return s.dest("xNome")
}

func (s *session) issuerAddress() string {
	return fmt.Sprintf("%s, %s - %s - %s - %s - CEP: %s Fone: %s",
		s.emit("xLgr"), s.emit("nro"), s.emit("xBairro"), s.emit("xMun"),
		s.emit("UF"), s.emit("CEP"), s.emit("fone"))
}

// observations joins the fiscal notes and the taxpayer's complementary text
func (s *session) observations() string {
	obs := s.inv.InfAdic.Text("infCpl")
	if fisco := s.inv.InfAdic.Text("infAdFisco"); fisco != "" {
		obs = fisco + " " + obs
	}
	return obs
}

func receiptText(inv *nfe.Invoice) string {
	issued, _ := format.Date(inv.Ide.Text("dhEmi"))
	dest := inv.Dest
	address := fmt.Sprintf("%s - %s, %s, %s, %s - %s",
		dest.Text("xNome"), dest.Text("xLgr"), dest.Text("nro"),
		dest.Text("xBairro"), dest.Text("xMun"), dest.Text("UF"))

	return fmt.Sprintf("RECEBEMOS DE %s OS PRODUTOS/SERVIÇOS CONSTANTES DA NOTA FISCAL INDICADA ABAIXO. "+
		"EMISSÃO: %s VALOR TOTAL: %s DESTINATARIO: %s",
		inv.Emit.Text("xNome"), issued, format.Number(inv.Total.Text("vNF"), 2), address)
}

func protocolText(inv *nfe.Invoice) string {
	date, hour := format.Date(inv.Protocol.Text("dhRecbto"))
	return fmt.Sprintf("%s - %s %s", inv.Protocol.Text("nProt"), date, hour)
}

// consultText points the reader to the authenticity portal
const consultText = "Consulta de autenticidade no portal nacional da NF-e " +
	"www.nfe.fazenda.gov.br/portal ou no site da Sefaz autorizadora"
