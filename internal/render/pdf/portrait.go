package pdf

import (
	"github.com/gompdf/danfe/internal/format"
	"github.com/gompdf/danfe/internal/layout"
	"github.com/gompdf/danfe/internal/parser/nfe"
)

// Portrait A4: a 190mm frame starting 10mm from the left edge.

func portraitReceipt(c *canvas, s *session) {
	y := 10.0
	if s.geo.Receipt == layout.ReceiptBottom {
		y = s.geo.AdditionalY + s.geo.AdditionalHeight + 2
		c.dashedLine(10, y, 200, y, 0.5, 1)
		y += 2
	} else {
		c.dashedLine(10, y+19, 200, y+19, 0.5, 1)
	}

	c.rect(10, y, 190, 17)
	c.line(10, y+8.5, 160, y+8.5)
	c.line(160, y, 160, y+17)
	c.line(54, y+8.5, 54, y+17)

	c.font("", 5)
	c.moveTo(layout.At(10, y))
	c.multiCell(150, 3, s.receipt, layout.AlignLeft)
	c.text(11, y+10.5, "DATA DE RECEBIMENTO")
	c.text(55, y+10.5, "IDENTIFICAÇÃO E ASSINATURA DO RECEBEDOR")
	c.text(178, y+2, "NF-e")

	c.font("B", 8)
	c.text(163, y+8, "Nº "+s.number)
	c.text(163, y+13, "SÉRIE "+s.series)
}

func portraitIssuer(c *canvas, s *session) {
	y := s.emitY
	c.rect(10, y, 190, 45)
	c.line(95, y, 95, y+31)
	c.line(123, y, 123, y+38)
	c.line(10, y+31, 200, y+31)
	c.line(10, y+38, 200, y+38)
	c.line(70, y+38, 70, y+45)
	c.line(110, y+38, 110, y+45)

	if s.logo {
		c.drawLogo(11, y+1, 12)
	}

	c.font("B", 10)
	c.moveTo(layout.At(26, y+2))
	c.multiCell(70, 5, s.emit("xNome"), layout.AlignCenter)

	c.font("B", 7)
	c.moveTo(layout.At(11, y+19))
	c.multiCell(83, 4, s.issuerAddress(), layout.AlignCenter)

	c.font("B", 12)
	c.text(102, y+5, "DANFE")
	c.font("", 7)
	c.text(96, y+9, "Documento Auxiliar da")
	c.text(96, y+12, "Nota Fiscal Eletrônica")
	c.text(96, y+16, "0 - Entrada")
	c.text(96, y+19, "1 - Saída")
	c.rect(114, y+14, 8, 6)
	c.font("B", 10)
	c.text(117, y+18, s.inv.Direction())

	c.font("B", 8)
	c.text(96, y+24, "Nº "+s.number)
	c.text(96, y+27, "SÉRIE "+s.series)
	c.text(100, y+30, s.pageLabel())

	c.font("", 5)
	c.text(124, y+2.5, "CONTROLE DO FISCO")
	c.barcode(s.key, 125, y+4, 9)

	c.rect(124, y+15, 75, 6)
	c.text(125, y+17, "CHAVE DE ACESSO")
	c.font("B", 7)
	c.text(131, y+20, format.AccessKey(s.key))

	c.font("", 8)
	c.moveTo(layout.At(124, y+23))
	c.multiCell(75, 3, consultText, layout.AlignLeft)

	c.font("", 5)
	c.text(11, y+33.1, "NATUREZA DA OPERAÇÃO")
	c.text(11, y+40, "INSCRIÇÃO ESTADUAL")
	c.text(71, y+40, "INSCRIÇÃO ESTADUAL DO SUBST. TRIB")
	c.text(111, y+40, "CNPJ")
	c.text(124, y+33.1, "PROTOCOLO DE AUTORIZAÇÃO DE USO")

	c.font("", 8)
	c.text(11, y+37, c.fit(s.ide("natOp"), 112))
	c.text(11, y+44, s.emit("IE"))
	c.text(71, y+44, s.emit("IEST"))
	c.text(111, y+44, format.CPFCNPJ(s.emit("CNPJ")))

	c.font("B", 7)
	c.moveTo(layout.At(123, y+34))
	c.cell(77, 5, s.protocol, layout.AlignCenter)

	if s.inv.IsHomologation() {
		c.watermark(197, 70)
	}
}

func portraitRecipient(c *canvas, s *session) {
	y := s.emitY + 49
	c.font("B", 7)
	c.text(11, y-1, "DESTINATÁRIO/REMETENTE")
	c.rect(10, y, 190, 20)
	c.line(10, y+6.66, 200, y+6.66)
	c.line(10, y+13.32, 200, y+13.32)
	c.line(123, y, 123, y+6.66)
	c.line(169, y, 169, y+20)
	c.line(97, y+6.66, 97, y+20)
	c.line(142, y+6.66, 142, y+13.32)
	c.line(60, y+13.32, 60, y+20)
	c.line(107, y+13.32, 107, y+20)

	c.font("", 5)
	c.text(11, y+2, "NOME/RAZÃO SOCIAL")
	c.text(124, y+2, "CNPJ/CPF")
	c.text(170, y+2, "DATA DA EMISSÃO")
	c.text(11, y+8.66, "ENDEREÇO")
	c.text(98, y+8.66, "BAIRRO/DISTRITO")
	c.text(143, y+8.66, "CEP")
	c.text(170, y+8.66, "DATA DA ENTRADA/SAÍDA")
	c.text(11, y+15.32, "MUNICÍPIO")
	c.text(61, y+15.32, "FONE/FAX")
	c.text(98, y+15.32, "UF")
	c.text(108, y+15.32, "INSCRIÇÃO ESTADUAL")
	c.text(170, y+15.32, "HORA DE ENTRADA/SAÍDA")

	issued, _ := format.Date(s.ide("dhEmi"))
	leftOn, leftAt := format.Date(s.ide("dhSaiEnt"))

	c.font("", 8)
	c.text(11, y+5.7, c.fit(s.recipientName(), 110))
	c.text(124, y+5.7, format.CPFCNPJ(s.inv.Recipient()))
	c.text(170, y+5.7, issued)
	c.text(11, y+12.4, c.fit(s.dest("xLgr")+", "+s.dest("nro"), 86))
	c.text(98, y+12.4, c.fit(s.dest("xBairro"), 44))
	c.text(143, y+12.4, s.dest("CEP"))
	c.text(170, y+12.4, leftOn)
	c.text(11, y+19.1, c.fit(s.dest("xMun"), 50))
	c.text(61, y+19.1, s.dest("fone"))
	c.text(98, y+19.1, s.dest("UF"))
	c.text(108, y+19.1, s.dest("IE"))
	c.text(170, y+19.1, leftAt)
}

func portraitBilling(c *canvas, s *session) {
	y := s.emitY + 73
	c.font("B", 7)
	c.text(11, y-1, "FATURA")
	c.rect(10, y, 190, 13)
	c.line(57.5, y, 57.5, y+13)
	c.line(105, y, 105, y+13)
	c.line(152.5, y, 152.5, y+13)
	c.line(152.5, y+6.5, 200, y+6.5)

	c.font("", 8)
	c.text(153.5, y+5.7, s.inv.Observation("CodVendedor"))
	c.text(153.5, y+12.24, c.fit(s.inv.Observation("NomeVendedor"), 47))
	c.font("", 5)
	c.text(153.5, y+2, "CÓDIGO VENDEDOR")
	c.text(153.5, y+8.5, "NOME VENDEDOR")

	drawDuplicates(c, s.inv.Duplicates(), layout.At(10, y), [3]float64{14.5, 15, 18})
}

func portraitTaxes(c *canvas, s *session) {
	y := s.emitY + 90
	c.font("B", 7)
	c.text(11, y-1, "CÁLCULO DO IMPOSTO")
	c.rect(10, y, 190, 13)
	c.line(10, y+6.5, 200, y+6.5)
	c.line(48, y, 48, y+6.5)
	c.line(86, y, 86, y+6.5)
	c.line(124, y, 124, y+6.5)
	c.line(162, y, 162, y+13)
	c.line(32, y+6.5, 32, y+13)
	c.line(54, y+6.5, 54, y+13)
	c.line(76, y+6.5, 76, y+13)
	c.line(103, y+6.5, 103, y+13)
	c.line(130, y+6.5, 130, y+13)

	c.font("", 5)
	c.text(11, y+2, "BASE DE CÁLCULO DO ICMS")
	c.text(49, y+2, "VALOR DO ICMS")
	c.text(87, y+2, "BASE DE CÁLCULO DO ICMS ST")
	c.text(125, y+2, "VALOR DO ICMS ST")
	c.text(163, y+2, "VALOR TOTAL DOS PRODUTOS")
	c.text(11, y+8.5, "VALOR DO FRETE")
	c.text(33, y+8.5, "VALOR DO SEGURO")
	c.text(55, y+8.5, "DESCONTO")
	c.text(77, y+8.5, "OUTRAS DESP. ACESSÓRIAS")
	c.text(104, y+8.5, "VALOR DO IPI")
	c.text(131, y+8.5, "VALOR APROX. TRIBUTOS")
	c.text(163, y+8.5, "VALOR TOTAL DA NOTA")

	c.font("", 8)
	s.totalsRow(c, layout.At(11, y+2.7), []float64{37, 38, 38, 38, 38}, firstTotals)
	s.totalsRow(c, layout.At(11, y+9.2), []float64{21, 22, 22, 27, 27, 32, 38}, secondTotals)
}

func portraitTransport(c *canvas, s *session) {
	y := s.emitY + 107
	c.font("B", 7)
	c.text(11, y-1, "TRANSPORTADOR/VOLUMES TRANSPORTADOS")
	c.rect(10, y, 190, 19)
	c.line(10, y+6.33, 200, y+6.33)
	c.line(10, y+12.66, 200, y+12.66)
	c.line(80, y, 80, y+6.33)
	c.line(105, y, 105, y+6.33)
	c.line(125, y, 125, y+6.33)
	c.line(147, y, 147, y+19)
	c.line(156, y, 156, y+12.66)
	c.line(97, y+6.33, 97, y+12.66)
	c.line(36, y+12.66, 36, y+19)
	c.line(73, y+12.66, 73, y+19)
	c.line(111, y+12.66, 111, y+19)
	c.line(173, y+12.66, 173, y+19)

	c.font("", 5)
	c.text(11, y+2, "RAZÃO SOCIAL")
	c.text(81, y+2, "FRETE POR CONTA")
	c.text(106, y+2, "CÓDIGO ANTT")
	c.text(126, y+2, "PLACA DO VEÍCULO")
	c.text(148, y+2, "UF")
	c.text(157, y+2, "CNPJ/CPF")
	c.text(11, y+8.33, "ENDEREÇO")
	c.text(98, y+8.33, "MUNICÍPIO")
	c.text(148, y+8.33, "UF")
	c.text(157, y+8.33, "INSCRIÇÃO ESTADUAL")
	c.text(11, y+14.66, "QUANTIDADE")
	c.text(37, y+14.66, "ESPÉCIE")
	c.text(74, y+14.66, "MARCA")
	c.text(112, y+14.66, "NUMERAÇÃO")
	c.text(148, y+14.66, "PESO BRUTO")
	c.text(174, y+14.66, "PESO LÍQUIDO")

	c.font("", 8)
	c.text(11, y+5.7, c.fit(s.carrier("xNome"), 69))
	c.text(81, y+5.7, format.Freight(s.inv.Transp.Text("modFrete")))
	c.text(106, y+5.7, s.vehicle("RNTC"))
	c.text(126, y+5.7, s.vehicle("placa"))
	c.text(148, y+5.7, s.vehicle("UF"))
	c.text(158, y+5.7, s.carrierDocument())
	c.text(11, y+12.03, c.fit(s.carrier("xEnder"), 86))
	c.text(98, y+12.03, c.fit(s.carrier("xMun"), 51))
	c.text(148, y+12.03, s.carrier("UF"))
	c.text(157, y+12.03, s.carrier("IE"))
	c.text(11, y+18.36, s.volume("qVol"))
	c.text(37, y+18.36, s.volume("esp"))
	c.text(74, y+18.36, s.volume("marca"))
	c.text(112, y+18.36, s.volume("nVol"))

	c.moveTo(layout.At(147, y+16))
	c.cell(26, 3, format.Number(s.volume("pesoB"), 3), layout.AlignRight)
	c.cell(27, 3, format.Number(s.volume("pesoL"), 3), layout.AlignRight)
}

func portraitAdditional(c *canvas, s *session) {
	y := s.geo.AdditionalY
	c.font("B", 7)
	c.text(11, y-1, "DADOS ADICIONAIS")
	c.font("", 5)
	c.text(11, y+2.5, "INFORMAÇÕES COMPLEMENTARES")
	c.text(106, y+2.5, "RESERVADO AO FISCO")
	c.rect(10, y, 190, s.geo.AdditionalHeight)
	c.line(105, y, 105, y+s.geo.AdditionalHeight)

	if obs := s.observations(); obs != "" {
		c.font("", 6)
		c.moveTo(layout.At(11, y+3.5))
		c.multiCell(93, 3, c.fit(obs, 700), layout.AlignLeft)
	}
}

// Totals printed in the two rows of the tax box, left to right
var (
	firstTotals  = []string{"vBC", "vICMS", "vBCST", "vST", "vProd"}
	secondTotals = []string{"vFrete", "vSeg", "vDesc", "vOutro", "vIPI", "vTotTrib", "vNF"}
)

// totalsRow prints right aligned ICMSTot values in cells of the given widths
func (s *session) totalsRow(c *canvas, at layout.Cursor, widths []float64, tags []string) {
	c.moveTo(at)
	for i, tag := range tags {
		c.cell(widths[i], 4, s.total(tag), layout.AlignRight)
	}
}

// drawDuplicates fills the billing box with up to three columns of three
// installments. w holds the number, due date and value cell widths.
func drawDuplicates(c *canvas, dups []nfe.Duplicate, box layout.Cursor, w [3]float64) {
	step := w[0] + w[1] + w[2]

	c.font("", 5)
	c.moveTo(box.Down(0.5))
	for i := 0; i < 3; i++ {
		c.cell(w[0], 2.5, "FATURA", layout.AlignLeft)
		c.cell(w[1], 2.5, "VENCIMENTO", layout.AlignCenter)
		c.cell(w[2], 2.5, "VALOR", layout.AlignRight)
	}

	c.font("", 7)
	for i, dup := range dups {
		due, _ := format.Date(dup.Due)
		c.moveTo(box.Right(float64(i/3) * step).Down(3 + float64(i%3)*3))
		c.cell(w[0], 4, dup.Number, layout.AlignLeft)
		c.cell(w[1], 4, due, layout.AlignCenter)
		c.cell(w[2], 4, format.Number(dup.Value, 2), layout.AlignRight)
	}
}
