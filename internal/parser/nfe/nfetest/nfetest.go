// Package nfetest builds NF-e and CC-e documents for tests.
package nfetest

import (
	"fmt"
	"strings"
)

// Key is a well formed access key used by the generated documents
const Key = "35240312345678000195550010000012341000012345"

// Item describes one det group
type Item struct {
	Description    string
	AdditionalInfo *string
}

// Invoice describes a generated NF-e
type Invoice struct {
	PrintType   string // tpImp
	Environment string // tpAmb
	Number      string
	Items       []Item
	Duplicates  int
	Seller      string
}

// Info returns a pointer to s, for Item.AdditionalInfo
func Info(s string) *string { return &s }

// Items returns n items with short descriptions
func Items(n int) []Item {
	out := make([]Item, n)
	for i := range out {
		out[i] = Item{Description: fmt.Sprintf("PRODUTO %d", i+1)}
	}
	return out
}

// XML renders the invoice as an authorized nfeProc document
func (inv Invoice) XML() string {
	if inv.PrintType == "" {
		inv.PrintType = "1"
	}
	if inv.Environment == "" {
		inv.Environment = "1"
	}
	if inv.Number == "" {
		inv.Number = "1234"
	}

	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	b.WriteString(`<nfeProc xmlns="http://www.portalfiscal.inf.br/nfe" versao="4.00"><NFe>`)
	fmt.Fprintf(&b, `<infNFe Id="NFe%s" versao="4.00">`, Key)
	fmt.Fprintf(&b, `<ide><natOp>VENDA DE MERCADORIA</natOp><serie>1</serie><nNF>%s</nNF>`+
		`<dhEmi>2024-03-05T14:22:10-03:00</dhEmi><dhSaiEnt>2024-03-06T08:00:00-03:00</dhSaiEnt>`+
		`<tpNF>1</tpNF><tpImp>%s</tpImp><tpAmb>%s</tpAmb></ide>`, inv.Number, inv.PrintType, inv.Environment)
	b.WriteString(`<emit><CNPJ>12345678000195</CNPJ><xNome>Comércio de Peças Ltda</xNome>` +
		`<enderEmit><xLgr>Rua das Flores</xLgr><nro>100</nro><xBairro>Centro</xBairro>` +
		`<xMun>São Paulo</xMun><UF>SP</UF><CEP>01001000</CEP><fone>1133334444</fone></enderEmit>` +
		`<IE>123456789110</IE></emit>`)
	b.WriteString(`<dest><CPF>12345678909</CPF><xNome>José da Silva</xNome>` +
		`<enderDest><xLgr>Av. Brasil</xLgr><nro>2000</nro><xBairro>Jardim América</xBairro>` +
		`<xMun>Rio de Janeiro</xMun><UF>RJ</UF><CEP>20040002</CEP><fone>2122223333</fone></enderDest></dest>`)

	for i, it := range inv.Items {
		fmt.Fprintf(&b, `<det nItem="%d"><prod><cProd>%03d</cProd><xProd>%s</xProd><NCM>84713012</NCM>`+
			`<CFOP>5102</CFOP><uCom>UN</uCom><qCom>2.0000</qCom><vUnCom>1500.5</vUnCom><vProd>3001.00</vProd></prod>`+
			`<imposto><ICMS><ICMS00><orig>0</orig><CST>00</CST><vBC>3001.00</vBC><pICMS>18.00</pICMS>`+
			`<vICMS>540.18</vICMS></ICMS00></ICMS><IPI><IPITrib><CST>50</CST><pIPI>5.00</pIPI><vIPI>150.05</vIPI>`+
			`</IPITrib></IPI></imposto>`, i+1, i+1, escape(it.Description))
		if it.AdditionalInfo != nil {
			fmt.Fprintf(&b, `<infAdProd>%s</infAdProd>`, escape(*it.AdditionalInfo))
		}
		b.WriteString(`</det>`)
	}

	b.WriteString(`<total><ICMSTot><vBC>3001.00</vBC><vICMS>540.18</vICMS><vBCST>0.00</vBCST><vST>0.00</vST>` +
		`<vProd>3001.00</vProd><vFrete>0.00</vFrete><vSeg>0.00</vSeg><vDesc>0.00</vDesc><vIPI>150.05</vIPI>` +
		`<vOutro>0.00</vOutro><vNF>3151.05</vNF><vTotTrib>900.00</vTotTrib></ICMSTot></total>`)
	b.WriteString(`<transp><modFrete>0</modFrete><transporta><CNPJ>98765432000110</CNPJ>` +
		`<xNome>Transportes Rápidos SA</xNome><IE>987654321</IE><xEnder>Rod. Anhanguera km 10</xEnder>` +
		`<xMun>Campinas</xMun><UF>SP</UF></transporta><vol><qVol>3</qVol><esp>CAIXA</esp><marca>ACME</marca>` +
		`<nVol>1-3</nVol><pesoL>12.500</pesoL><pesoB>13.750</pesoB></vol></transp>`)

	if inv.Duplicates > 0 {
		b.WriteString(`<cobr><fat><nFat>1234</nFat><vOrig>3151.05</vOrig><vLiq>3151.05</vLiq></fat>`)
		for i := 1; i <= inv.Duplicates; i++ {
			fmt.Fprintf(&b, `<dup><nDup>%03d</nDup><dVenc>2024-%02d-05</dVenc><vDup>100.00</vDup></dup>`, i, (i-1)%12+1)
		}
		b.WriteString(`</cobr>`)
	}

	b.WriteString(`<infAdic><infAdFisco>DOCUMENTO EMITIDO POR ME OU EPP</infAdFisco>` +
		`<infCpl>Pedido 4321. Entrega em horário comercial.</infCpl>`)
	if inv.Seller != "" {
		fmt.Fprintf(&b, `<obsCont xCampo="CodVendedor"><xTexto>77</xTexto></obsCont>`+
			`<obsCont xCampo="NomeVendedor"><xTexto>%s</xTexto></obsCont>`, escape(inv.Seller))
	}
	b.WriteString(`</infAdic></infNFe></NFe>`)
	fmt.Fprintf(&b, `<protNFe versao="4.00"><infProt><tpAmb>%s</tpAmb><chNFe>%s</chNFe>`+
		`<dhRecbto>2024-03-05T14:25:00-03:00</dhRecbto><nProt>135240000012345</nProt><cStat>100</cStat>`+
		`</infProt></protNFe></nfeProc>`, inv.Environment, Key)
	return b.String()
}

// Event returns an authorized CC-e document
func Event(correction string) string {
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>`+
		`<procEventoNFe xmlns="http://www.portalfiscal.inf.br/nfe" versao="1.00">`+
		`<evento versao="1.00"><infEvento Id="ID110110%s01"><cOrgao>35</cOrgao><tpAmb>1</tpAmb>`+
		`<CNPJ>12345678000195</CNPJ><chNFe>%s</chNFe><dhEvento>2024-03-10T09:15:00-03:00</dhEvento>`+
		`<tpEvento>110110</tpEvento><nSeqEvento>1</nSeqEvento><verEvento>1.00</verEvento>`+
		`<detEvento versao="1.00"><descEvento>Carta de Correcao</descEvento><xCorrecao>%s</xCorrecao>`+
		`<xCondUso>A Carta de Correcao e disciplinada pelo paragrafo 1o-A do art. 7o do Convenio S/N.</xCondUso>`+
		`</detEvento></infEvento></evento><retEvento versao="1.00"><infEvento><tpAmb>1</tpAmb>`+
		`<cStat>135</cStat><chNFe>%s</chNFe><CNPJDest>98765432000110</CNPJDest>`+
		`<dhRegEvento>2024-03-10T09:16:30-03:00</dhRegEvento><nProt>135240000099999</nProt>`+
		`</infEvento></retEvento></procEventoNFe>`, Key, Key, escape(correction), Key)
}

func escape(s string) string {
	return strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;").Replace(s)
}
