package pdf

import (
	"fmt"

	"github.com/gompdf/danfe/internal/format"
	"github.com/gompdf/danfe/internal/layout"
	"github.com/gompdf/danfe/internal/parser/nfe"
)

const cceNotice = "De acordo com as determinações legais vigentes, vimos por meio desta " +
	"comunicar-lhe que a Nota Fiscal, abaixo referenciada, contêm irregularidades que " +
	"estão destacadas e suas respectivas correções, solicitamos que sejam aplicadas " +
	"essas correções ao executar seus lançamentos fiscais."

const cceFooter = "Este documento é uma representação gráfica da CC-e e foi impresso apenas " +
	"para sua informação e não possue validade fiscal.\nA CC-e deve ser recebida e " +
	"mantida em arquivo eletrônico XML e pode ser consultada através dos portais das SEFAZ."

// drawCCe draws the single portrait page of a correction letter
func (r *Renderer) drawCCe(c *canvas, ev *nfe.Event) {
	c.pdf.AddPageFormat(string(layout.OrientationPortrait), c.pdf.GetPageSizeStr("A4"))

	r.drawCCeIssuer(c)

	c.font("B", 10)
	c.text(118, 16, "Representação Gráfica de CC-e")
	c.font("I", 9)
	c.text(123, 20, "(Carta de Correção Eletrônica)")

	created, createdAt := format.Date(ev.Created())
	registered, registeredAt := format.Date(ev.Registered())
	c.font("", 8)
	c.text(92, 30, "ID do Evento: "+ev.ID())
	c.text(92, 35, fmt.Sprintf("Criado em:  %s %s", created, createdAt))
	c.text(92, 40, fmt.Sprintf("Protocolo: %s - Registrado na SEFAZ em: %s %s", ev.Protocol(), registered, registeredAt))

	// Recipient and corrected invoice
	c.rect(10, 47, 190, 50)
	c.line(10, 83, 200, 83)
	c.moveTo(layout.At(11, 48))
	c.font("", 8)
	c.multiCell(185, 4, cceNotice, layout.AlignLeft)

	c.barcode(ev.Key(), 124, 60, 15)
	c.font("", 7)
	c.text(130, 78, format.AccessKey(ev.Key()))

	c.font("B", 9)
	c.text(12, 71, "CNPJ Destinatário:  "+format.CPFCNPJ(ev.RecipientCNPJ()))
	c.text(12, 76, fmt.Sprintf("Nota Fiscal: %s - Série: %s", format.NFNumber(ev.InvoiceNumber()), ev.InvoiceSeries()))

	c.moveTo(layout.At(11, 84))
	c.font("I", 7)
	c.multiCell(185, 3, ev.Conditions(), layout.AlignLeft)

	// Corrections
	c.font("B", 9)
	c.text(11, 103, "CORREÇÕES A SEREM CONSIDERADAS")
	c.rect(10, 104, 190, 170)
	c.moveTo(layout.At(11, 106))
	c.multiCell(185, 4, ev.Correction(), layout.AlignLeft)

	c.moveTo(layout.At(11, 265))
	c.font("I", 8)
	c.multiCell(185, 4, cceFooter, layout.AlignCenter)
}

// drawCCeIssuer fills the left of the header box with the configured
// issuer, shifted right when a logo is present
func (r *Renderer) drawCCeIssuer(c *canvas) {
	c.rect(10, 10, 190, 33)
	c.line(90, 10, 90, 43)

	nameX, nameWidth, addressY := 11.0, 80.0, 24.0
	if r.hasLogo() {
		nameX, nameWidth, addressY = 23, 67, 28
		c.drawLogo(12, 12, 12)
	}

	e := r.Emitter
	if e == nil {
		return
	}

	c.moveTo(layout.At(nameX, 16))
	c.font("B", 10)
	c.multiCell(nameWidth, 4, e.Name, layout.AlignCenter)

	c.moveTo(layout.At(11, addressY))
	c.font("", 8)
	c.multiCell(80, 4, fmt.Sprintf("%s\n%s\n%s - %s %s", e.Address, e.District, e.City, e.State, e.Phone), layout.AlignCenter)
}
