// Package catalog defines the static table of extractable customs-declaration
// fields: candidate patterns, validators, priorities and cleaning classes.
// The table is read-only after init; learned patterns live in the pattern
// repository, not here.
package catalog

// Field names as they appear on Iranian customs declaration forms. The
// numbered prefixes in patterns (31, 33, 38, ...) are the printed box numbers
// of the single administrative document layout.
const (
	FieldDeclarationNumber = "شماره_کوتا"
	FieldCommodityCode     = "کد_کالا"
	FieldDescription       = "شرح_کالا"
	FieldPackageType       = "نوع_بسته"
	FieldPackageCount      = "تعداد_بسته"
	FieldNetWeight         = "وزن_خالص"
	FieldCountry           = "کشور_طرف_معامله"
	FieldExchangeRate      = "نرخ_ارز"
	FieldCurrency          = "نوع_ارز"
	FieldTransactionType   = "نوع_معامله"
	FieldInsurance         = "بیمه"
	FieldFreight           = "کرایه"
	FieldUnitCount         = "تعداد_واحد_کالا"
	FieldItemValue         = "ارزش_قلم_کالا"
	FieldCustomsValue      = "ارزش_گمرکی"
	FieldImportDuty        = "مبلغ_حقوق_ورودی"
	FieldVAT               = "مالیات_بر_ارزش_افزوده"
	FieldTotalDuties       = "جمع_حقوق_عوارض"
)

// FieldClass selects the cleaning applied to a raw captured group before
// validation.
type FieldClass int

const (
	// ClassNone leaves the trimmed capture as-is.
	ClassNone FieldClass = iota
	// ClassNumeric strips everything but digits.
	ClassNumeric
	// ClassDecimal strips everything but digits and the decimal point.
	ClassDecimal
	// ClassText strips digits and out-of-script punctuation.
	ClassText
	// ClassCurrency uppercases and keeps only A-Z.
	ClassCurrency
)

// FieldSpec describes one extractable field: its candidate patterns in
// priority order (hand-tuned, most specific first), its validator, its
// catalog priority rank (1 = highest) and whether it is a line-item
// attribute re-extracted on continuation pages.
type FieldSpec struct {
	Name        string
	Patterns    []string
	Validator   Validator
	Priority    int
	Class       FieldClass
	Description string
	LineItem    bool
}

var fieldSpecs = []FieldSpec{
	{
		Name: FieldDeclarationNumber,
		Patterns: []string{
			`کوتا[\s)]*(\d{8,9})`,
			`(\d{8,9})\s*ش[\s.]*بایگانی`,
			`شماره\s*ثبت[\s(]*کوتا[\s)]*(\d{8,9})`,
			`(\d{8,9})\s*تاریخ`,
			`(\d{8,9})\s*۱۴۰۳`,
			`(\d{8,9})\s*1403`,
			`کوتا[\s:]*(\d{8,9})`,
			`شماره[\s:]*(\d{8,9})\s*کوتا`,
			`(\d{8,9})\s*شماره\s*کوتا`,
		},
		Validator:   Validator{Kind: AllDigitsMinLen, N: 8},
		Priority:    1,
		Class:       ClassNumeric,
		Description: "شماره کوتا 8-9 رقمی",
	},
	{
		Name: FieldCommodityCode,
		Patterns: []string{
			`33[\s.]*کد\s*کالا[\s:]*(\d{8})`,
			`کد\s*کالا[\s:]*(\d{8})`,
			`(\d{8})\s*کشور\s*سازنده`,
			`33[\s.]*(\d{8})`,
			`(\d{8})\s*شرح`,
			`HS\s*Code[\s:]*(\d{8})`,
			`Commodity\s*Code[\s:]*(\d{8})`,
			`کد[\s:]*(\d{8})\s*کالا`,
			`(\d{8})\s*کد\s*کالا`,
			`33[\s.]*کد[\s:]*(\d{8})`,
		},
		Validator:   Validator{Kind: ExactDigits, N: 8},
		Priority:    1,
		Class:       ClassNumeric,
		Description: "کد 8 رقمی کالا",
		LineItem:    true,
	},
	{
		Name: FieldDescription,
		Patterns: []string{
			`31[\s.]*شرح\s*کالا[\s:]*([^\n\r\d]{5,100})`,
			`شرح\s*کالا[\s:]*([^\n\r\d]{5,100})`,
			`31[\s.]*([^\n\r\d]{10,100})\s*نوع\s*بسته`,
			`توضیحات[\s:]*([^\n\r\d]{5,100})`,
			`31[\s.]*([آ-ی\s]{5,100})\s*\d`,
			`شرح[\s:]*([آ-ی\s]{5,100})`,
			`31[\s.]*([A-Za-z\s]{5,100})\s*[Pp]ack`,
		},
		Validator:   Validator{Kind: NonEmptyText, N: 3},
		Priority:    2,
		Class:       ClassText,
		Description: "شرح کالا",
		LineItem:    true,
	},
	{
		Name: FieldPackageType,
		Patterns: []string{
			`نوع\s*بسته[\s:]*([^\d\n\r]{2,20})`,
			`31[\s.]*.*نوع\s*بسته[\s:]*([^\d\n\r]{2,20})`,
			`بسته\s*بندی[\s:]*([^\d\n\r]{2,20})`,
			`[Pp]ackage[\s:]*([A-Za-z\s]{2,20})`,
			`([کارتن|جعبه|بسته|کیسه|گونی])`,
			`نوع[\s:]*([آ-ی\s]{2,15})\s*تعداد`,
		},
		Validator:   Validator{Kind: NonEmptyText, N: 2},
		Priority:    3,
		Class:       ClassText,
		Description: "نوع بسته‌بندی",
		LineItem:    true,
	},
	{
		Name: FieldPackageCount,
		Patterns: []string{
			`تعداد\s*بسته[\s:]*(\d+)`,
			`31[\s.]*.*تعداد[\s:]*(\d+)`,
			`(\d+)\s*عدد\s*بسته`,
			`تعداد[\s:]*(\d+)\s*[کارتن|جعبه|بسته]`,
			`(\d+)\s*[کارتن|جعبه|بسته]`,
			`تعداد[\s:]*(\d+)`,
		},
		Validator:   Validator{Kind: PositiveInteger},
		Priority:    3,
		Class:       ClassNumeric,
		Description: "تعداد بسته",
		LineItem:    true,
	},
	{
		Name: FieldNetWeight,
		Patterns: []string{
			`38[\s.]*وزن\s*خالص[\s:]*(\d+(?:\.\d+)?)`,
			`وزن\s*خالص[\s:]*(\d+(?:\.\d+)?)`,
			`خالص[\s:]*(\d+(?:\.\d+)?)`,
			`Net\s*Weight[\s:]*(\d+(?:\.\d+)?)`,
			`(\d+(?:\.\d+)?)\s*کیلو`,
			`(\d+(?:\.\d+)?)\s*KG`,
			`38[\s.]*(\d+(?:\.\d+)?)\s*کیلو`,
			`وزن[\s:]*(\d+(?:\.\d+)?)\s*کیلوگرم`,
			`(\d+(?:\.\d+)?)\s*کیلوگرم`,
		},
		Validator:   Validator{Kind: PositiveDecimal},
		Priority:    2,
		Class:       ClassDecimal,
		Description: "وزن خالص",
		LineItem:    true,
	},
	{
		Name: FieldCountry,
		Patterns: []string{
			`17[\s.]*کشور\s*طرف\s*معامله[\s:]*([A-Za-z\x{0600}-\x{06FF}\s]{2,30})`,
			`کشور\s*طرف\s*معامله[\s:]*([A-Za-z\x{0600}-\x{06FF}\s]{2,30})`,
			`17[\s.]*کشور[\s:]*([A-Za-z\x{0600}-\x{06FF}\s]{2,30})`,
			`Country[\s:]*([A-Za-z\s]{2,30})`,
			`Origin[\s:]*([A-Za-z\s]{2,30})`,
			`17[\s.]*([A-Za-z]{2,20})\s*\d`,
			`کشور[\s:]*([آ-ی\s]{2,20})`,
		},
		Validator:   Validator{Kind: NonEmptyText, N: 2},
		Priority:    2,
		Class:       ClassText,
		Description: "کشور طرف معامله",
	},
	{
		Name: FieldExchangeRate,
		Patterns: []string{
			`23[\s.]*نرخ\s*ارز[\s:]*(\d+(?:\.\d+)?)`,
			`نرخ\s*ارز[\s:]*(\d+(?:\.\d+)?)`,
			`23[\s.]*نرخ[\s:]*(\d+(?:\.\d+)?)`,
			`Rate[\s:]*(\d+(?:\.\d+)?)`,
			`exchange\s*rate[\s:]*(\d+(?:\.\d+)?)`,
			`23[\s.]*(\d+(?:\.\d+)?)\s*ریال`,
			`نرخ[\s:]*(\d+(?:\.\d+)?)`,
		},
		Validator:   Validator{Kind: PositiveDecimal},
		Priority:    3,
		Class:       ClassDecimal,
		Description: "نرخ ارز",
	},
	{
		Name: FieldCurrency,
		Patterns: []string{
			`22[\s.]*نوع\s*ارز[\s:]*([A-Z]{2,4})`,
			`نوع\s*ارز[\s:]*([A-Z]{2,4})`,
			`Currency[\s:]*([A-Z]{2,4})`,
			`22[\s.]*([A-Z]{2,4})\s*نرخ`,
			`ارز[\s:]*([A-Z]{2,4})`,
			`([USD|EUR|IRR|AED]{3})`,
		},
		Validator:   Validator{Kind: UppercaseMinLen, N: 2},
		Priority:    4,
		Class:       ClassCurrency,
		Description: "نوع ارز",
	},
	{
		Name: FieldTransactionType,
		Patterns: []string{
			`24[\s.]*نوع\s*معامله[\s:]*(\d{1,3})`,
			`نوع\s*معامله[\s:]*(\d{1,3})`,
			`24[\s.]*(\d{1,3})\s*نوع`,
			`معامله[\s:]*(\d{1,3})`,
		},
		Validator:   Validator{Kind: DigitsMaxLen, N: 3},
		Priority:    4,
		Description: "نوع معامله",
	},
	{
		Name: FieldInsurance,
		Patterns: []string{
			`37[\s.]*بیمه[\s:]*(\d+(?:\.\d+)?)`,
			`بیمه[\s:]*(\d+(?:\.\d+)?)`,
			`Insurance[\s:]*(\d+(?:\.\d+)?)`,
			`بیمه[\s:]*(\d+(?:\.\d+)?)\s*کرایه`,
			`(\d+(?:\.\d+)?)\s*بیمه`,
			`37[\s.]*(\d+(?:\.\d+)?)\s*بیمه`,
		},
		Validator:   Validator{Kind: Decimal},
		Priority:    3,
		Class:       ClassDecimal,
		Description: "مبلغ بیمه",
		LineItem:    true,
	},
	{
		Name: FieldFreight,
		Patterns: []string{
			`کرایه[\s:]*(\d+(?:\.\d+)?)`,
			`37[\s.]*کرایه[\s:]*(\d+(?:\.\d+)?)`,
			`Freight[\s:]*(\d+(?:\.\d+)?)`,
			`بیمه.*کرایه[\s:]*(\d+(?:\.\d+)?)`,
			`(\d+(?:\.\d+)?)\s*کرایه`,
			`کرایه[\s:]*(\d+(?:\.\d+)?).*37`,
		},
		Validator:   Validator{Kind: Decimal},
		Priority:    3,
		Class:       ClassDecimal,
		Description: "مبلغ کرایه",
		LineItem:    true,
	},
	{
		Name: FieldUnitCount,
		Patterns: []string{
			`41[\s.]*تعداد\s*واحد\s*کالا[\s:]*(\d+(?:\.\d+)?)`,
			`تعداد\s*واحد\s*کالا[\s:]*(\d+(?:\.\d+)?)`,
			`41[\s.]*تعداد[\s:]*(\d+(?:\.\d+)?)`,
			`واحد\s*کالا[\s:]*(\d+(?:\.\d+)?)`,
			`41[\s.]*(\d+(?:\.\d+)?)\s*واحد`,
		},
		Validator:   Validator{Kind: PositiveDecimal},
		Priority:    3,
		Description: "تعداد واحد کالا",
		LineItem:    true,
	},
	{
		Name: FieldItemValue,
		Patterns: []string{
			`42[\s.]*ارزش\s*قلم\s*کالا[\s:]*(\d+(?:\.\d+)?)`,
			`ارزش\s*قلم\s*کالا[\s:]*(\d+(?:\.\d+)?)`,
			`42[\s.]*مبلغ\s*کل\s*فاکتور[\s:]*(\d+(?:\.\d+)?)`,
			`مبلغ\s*کل\s*فاکتور[\s:]*(\d+(?:\.\d+)?)`,
			`42[\s.]*(\d+(?:\.\d+)?)\s*ارزش`,
			`ارزش[\s:]*(\d+(?:\.\d+)?)\s*قلم`,
		},
		Validator:   Validator{Kind: PositiveDecimal},
		Priority:    2,
		Description: "ارزش قلم کالا",
		LineItem:    true,
	},
	{
		Name: FieldCustomsValue,
		Patterns: []string{
			`46[\s.]*ارزش\s*گمرکی[\s:]*(\d+(?:\.\d+)?)`,
			`ارزش\s*گمرکی[\s:]*(\d+(?:\.\d+)?)`,
			`Customs\s*Value[\s:]*(\d+(?:\.\d+)?)`,
			`CIF[\s:]*(\d+(?:\.\d+)?)`,
			`46[\s.]*(\d+(?:\.\d+)?)\s*ارزش`,
			`گمرکی[\s:]*(\d+(?:\.\d+)?)`,
		},
		Validator:   Validator{Kind: PositiveDecimal},
		Priority:    2,
		Class:       ClassDecimal,
		Description: "ارزش گمرکی",
		LineItem:    true,
	},
	{
		Name: FieldImportDuty,
		Patterns: []string{
			`041[\s.]*.*مبلغ[\s:]*(\d+(?:\.\d+)?)`,
			`حقوق\s*ورودی[\s:]*(\d+(?:\.\d+)?)`,
			`041.*(\d+(?:\.\d+)?).*مبلغ`,
			`مبلغ[\s:]*(\d+(?:\.\d+)?)\s*041`,
			`ورودی[\s:]*(\d+(?:\.\d+)?)`,
			`041[\s.]*(\d+(?:\.\d+)?)`,
		},
		Validator:   Validator{Kind: Decimal},
		Priority:    3,
		Description: "مبلغ حقوق ورودی",
		LineItem:    true,
	},
	{
		Name: FieldVAT,
		Patterns: []string{
			`047[\s.]*.*مبلغ[\s:]*(\d+(?:\.\d+)?)`,
			`مالیات\s*بر\s*ارزش\s*افزوده[\s:]*(\d+(?:\.\d+)?)`,
			`047.*(\d+(?:\.\d+)?).*مبلغ`,
			`مبلغ[\s:]*(\d+(?:\.\d+)?)\s*047`,
			`ارزش\s*افزوده[\s:]*(\d+(?:\.\d+)?)`,
			`047[\s.]*(\d+(?:\.\d+)?)`,
		},
		Validator:   Validator{Kind: Decimal},
		Priority:    3,
		Description: "مالیات بر ارزش افزوده",
		LineItem:    true,
	},
	{
		Name: FieldTotalDuties,
		Patterns: []string{
			`جمع\s*حقوق\s*و\s*عوارض[\s:]*(\d+(?:\.\d+)?)`,
			`049[\s.]*.*جمع[\s:]*(\d+(?:\.\d+)?)`,
			`Total[\s:]*(\d+(?:\.\d+)?)`,
			`جمع[\s:]*(\d+(?:\.\d+)?)\s*049`,
			`حقوق\s*و\s*عوارض[\s:]*(\d+(?:\.\d+)?)`,
			`049[\s.]*(\d+(?:\.\d+)?)`,
		},
		Validator:   Validator{Kind: Decimal},
		Priority:    3,
		Description: "جمع حقوق و عوارض",
		LineItem:    true,
	},
}

var specIndex = func() map[string]*FieldSpec {
	idx := make(map[string]*FieldSpec, len(fieldSpecs))
	for i := range fieldSpecs {
		idx[fieldSpecs[i].Name] = &fieldSpecs[i]
	}
	return idx
}()

// Lookup returns the FieldSpec for a field name, or false if the field is
// not in the catalog. Export declarations share the import table.
func Lookup(name string) (*FieldSpec, bool) {
	spec, ok := specIndex[name]
	return spec, ok
}

// FieldNames lists every catalog field in declaration order.
func FieldNames() []string {
	names := make([]string, len(fieldSpecs))
	for i, spec := range fieldSpecs {
		names[i] = spec.Name
	}
	return names
}

// LineItemFields lists the fields re-extracted on continuation pages.
// Header-only fields (currency, exchange rate, country, declaration number,
// transaction type) appear on page 0 only.
func LineItemFields() []string {
	var names []string
	for _, spec := range fieldSpecs {
		if spec.LineItem {
			names = append(names, spec.Name)
		}
	}
	return names
}
