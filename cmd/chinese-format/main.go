package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	chinese "github.com/goliatone/go-chinese"
	"github.com/goliatone/go-chinese/currency"
	"github.com/goliatone/go-chinese/gregorian"
)

type renderConfig struct {
	locale    string
	financial bool

	number   string
	fraction string
	decimal  string

	fen   int64
	style string

	date       string
	weekDay    int
	weekFormat string
	informal   bool

	clock   string
	delta   bool
	dayPart bool

	catalogs    []string
	measure     string
	measureName string
}

type catalogFlag struct {
	items []string
}

func (f *catalogFlag) String() string {
	return strings.Join(f.items, ",")
}

func (f *catalogFlag) Set(value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return errors.New("empty catalog path")
	}
	f.items = append(f.items, value)
	return nil
}

func main() {
	cfg, err := parseFlags()
	if err != nil {
		reportError(err)
	}

	if err := run(cfg); err != nil {
		reportError(err)
	}
}

func reportError(err error) {
	fmt.Fprintf(os.Stderr, "chinese-format: %v\n", err)
	os.Exit(1)
}

func parseFlags() (renderConfig, error) {
	var cfg renderConfig
	var catalogs catalogFlag

	flag.StringVar(&cfg.locale, "locale", "zh", "output locale, e.g. zh, zh-TW, zh-Hant")
	flag.BoolVar(&cfg.financial, "financial", false, "use anti-fraud financial numerals")

	flag.StringVar(&cfg.number, "number", "", "integer to render")
	flag.StringVar(&cfg.fraction, "fraction", "", "fraction to render as numerator/denominator, e.g. 5/7")
	flag.StringVar(&cfg.decimal, "decimal", "", "decimal to render, e.g. -487.309")

	flag.Int64Var(&cfg.fen, "fen", -1, "renminbi amount in fen")
	flag.StringVar(&cfg.style, "style", "formal", "currency style: formal, informal or financial")

	flag.StringVar(&cfg.date, "date", "", "date to render as [yyyy-]mm-dd")
	flag.IntVar(&cfg.weekDay, "weekday", -1, "week day to append, 0=Sunday .. 6=Saturday")
	flag.StringVar(&cfg.weekFormat, "week", "xingqi", "week word: xingqi, zhou or libai")
	flag.BoolVar(&cfg.informal, "informal", false, "use 日 instead of 号 for the day of the month")

	flag.StringVar(&cfg.clock, "time", "", "time to render as hh:mm or hh:mm:ss")
	flag.BoolVar(&cfg.delta, "delta", false, "read the time relative to the clock hour")
	flag.BoolVar(&cfg.dayPart, "daypart", false, "prefix the time with the part of the day")

	flag.Var(&catalogs, "catalog", "measure catalog YAML file. Repeat flag to add more.")
	flag.StringVar(&cfg.measure, "measure", "", "measure to render as name:magnitude, e.g. renminbi:105")

	flag.Parse()

	cfg.catalogs = catalogs.items

	if cfg.measure != "" {
		parts := strings.SplitN(cfg.measure, ":", 2)
		if len(parts) != 2 || parts[0] == "" {
			return renderConfig{}, fmt.Errorf("invalid -measure value %q (want name:magnitude)", cfg.measure)
		}
		if len(cfg.catalogs) == 0 {
			return renderConfig{}, errors.New("-measure requires at least one -catalog file")
		}
		cfg.measureName = parts[0]
		cfg.measure = parts[1]
	}

	if cfg.number == "" && cfg.fraction == "" && cfg.decimal == "" &&
		cfg.fen < 0 && cfg.date == "" && cfg.weekDay < 0 && cfg.clock == "" &&
		cfg.measureName == "" {
		return renderConfig{}, errors.New("nothing to render (set -number, -fraction, -decimal, -fen, -date, -time or -measure)")
	}

	return cfg, nil
}

func run(cfg renderConfig) error {
	ctx := chinese.ContextForLocale(cfg.locale).WithFinancial(cfg.financial)

	emit := func(value chinese.ToChinese) {
		fmt.Println(value.ToChinese(ctx).Text)
	}

	if cfg.number != "" {
		value, err := strconv.ParseInt(cfg.number, 10, 64)
		if err != nil {
			return fmt.Errorf("parse -number: %w", err)
		}
		emit(chinese.Integer(value))
	}

	if cfg.fraction != "" {
		fraction, err := parseFraction(cfg.fraction)
		if err != nil {
			return err
		}
		emit(fraction)
	}

	if cfg.decimal != "" {
		decimal, err := parseDecimal(cfg.decimal)
		if err != nil {
			return err
		}
		emit(decimal)
	}

	if cfg.fen >= 0 {
		style, err := parseStyle(cfg.style)
		if err != nil {
			return err
		}
		emit(currency.FromFen(uint64(cfg.fen), style))
	}

	if cfg.date != "" || cfg.weekDay >= 0 {
		date, err := buildDate(cfg)
		if err != nil {
			return err
		}
		emit(date)
	}

	if cfg.clock != "" {
		moment, err := buildTime(cfg)
		if err != nil {
			return err
		}
		emit(moment)
	}

	if cfg.measureName != "" {
		tables, err := chinese.LoadMeasureTableFiles(cfg.catalogs...)
		if err != nil {
			return err
		}
		table, ok := tables[cfg.measureName]
		if !ok {
			return fmt.Errorf("unknown measure %q", cfg.measureName)
		}
		magnitude, err := strconv.ParseUint(cfg.measure, 10, 64)
		if err != nil {
			return fmt.Errorf("parse measure magnitude: %w", err)
		}
		emit(table.New(magnitude))
	}

	return nil
}

func parseFraction(input string) (chinese.Fraction, error) {
	parts := strings.SplitN(input, "/", 2)
	if len(parts) != 2 {
		return chinese.Fraction{}, fmt.Errorf("invalid -fraction value %q (want numerator/denominator)", input)
	}
	numerator, err := strconv.ParseInt(strings.TrimSpace(parts[0]), 10, 64)
	if err != nil {
		return chinese.Fraction{}, fmt.Errorf("parse numerator: %w", err)
	}
	denominator, err := strconv.ParseUint(strings.TrimSpace(parts[1]), 10, 64)
	if err != nil {
		return chinese.Fraction{}, fmt.Errorf("parse denominator: %w", err)
	}
	return chinese.NewFraction(denominator, numerator)
}

func parseDecimal(input string) (chinese.Decimal, error) {
	whole, fractional, found := strings.Cut(input, ".")
	integer, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return chinese.Decimal{}, fmt.Errorf("parse -decimal: %w", err)
	}
	decimal := chinese.Decimal{Integer: integer}
	if found {
		digits, err := chinese.ParseDigitSequence(fractional)
		if err != nil {
			return chinese.Decimal{}, fmt.Errorf("parse -decimal: %w", err)
		}
		decimal.Fractional = digits
	}
	return decimal, nil
}

func parseStyle(input string) (currency.Style, error) {
	switch input {
	case "formal":
		return currency.EverydayFormal, nil
	case "informal":
		return currency.EverydayInformal, nil
	case "financial":
		return currency.Financial, nil
	default:
		return currency.EverydayFormal, fmt.Errorf("unknown currency style %q", input)
	}
}

func parseWeekFormat(input string) (gregorian.WeekFormat, error) {
	switch input {
	case "xingqi":
		return gregorian.XingQi, nil
	case "zhou":
		return gregorian.Zhou, nil
	case "libai":
		return gregorian.LiBai, nil
	default:
		return gregorian.XingQi, fmt.Errorf("unknown week format %q", input)
	}
}

func buildDate(cfg renderConfig) (gregorian.Date, error) {
	builder := gregorian.NewDateBuilder()

	if cfg.date != "" {
		parts := strings.Split(cfg.date, "-")
		var year, month, day string
		switch len(parts) {
		case 2:
			month, day = parts[0], parts[1]
		case 3:
			year, month, day = parts[0], parts[1], parts[2]
		default:
			return gregorian.Date{}, fmt.Errorf("invalid -date value %q (want [yyyy-]mm-dd)", cfg.date)
		}

		if year != "" {
			value, err := strconv.Atoi(year)
			if err != nil {
				return gregorian.Date{}, fmt.Errorf("parse year: %w", err)
			}
			builder.WithYear(value)
		}
		monthValue, err := strconv.Atoi(month)
		if err != nil {
			return gregorian.Date{}, fmt.Errorf("parse month: %w", err)
		}
		dayValue, err := strconv.Atoi(day)
		if err != nil {
			return gregorian.Date{}, fmt.Errorf("parse day: %w", err)
		}
		builder.WithMonth(monthValue).WithDay(dayValue)
	}

	if cfg.weekDay >= 0 {
		weekDay, err := gregorian.WeekDayFromOrdinal(cfg.weekDay)
		if err != nil {
			return gregorian.Date{}, err
		}
		format, err := parseWeekFormat(cfg.weekFormat)
		if err != nil {
			return gregorian.Date{}, err
		}
		builder.WithWeekDay(weekDay).WithWeekFormat(format)
	}

	builder.WithFormal(!cfg.informal)
	return builder.Build()
}

func buildTime(cfg renderConfig) (chinese.ToChinese, error) {
	parts := strings.Split(cfg.clock, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return nil, fmt.Errorf("invalid -time value %q (want hh:mm or hh:mm:ss)", cfg.clock)
	}

	hourValue, err := strconv.Atoi(parts[0])
	if err != nil {
		return nil, fmt.Errorf("parse hour: %w", err)
	}
	minuteValue, err := strconv.Atoi(parts[1])
	if err != nil {
		return nil, fmt.Errorf("parse minute: %w", err)
	}

	minute, err := gregorian.NewMinute(minuteValue)
	if err != nil {
		return nil, err
	}

	if cfg.delta {
		if len(parts) == 3 {
			return nil, errors.New("-delta does not take seconds")
		}
		hour24, err := gregorian.NewHour24(hourValue)
		if err != nil {
			return nil, err
		}
		return gregorian.DeltaTime{Hour: gregorian.Hour12Of(hour24), Minute: minute}, nil
	}

	hour, err := gregorian.NewHour24(hourValue)
	if err != nil {
		return nil, err
	}

	moment := gregorian.LinearTime{WithDayPart: cfg.dayPart, Hour: hour, Minute: minute}
	if len(parts) == 3 {
		secondValue, err := strconv.Atoi(parts[2])
		if err != nil {
			return nil, fmt.Errorf("parse second: %w", err)
		}
		second, err := gregorian.NewSecond(secondValue)
		if err != nil {
			return nil, err
		}
		moment.Second = &second
	}
	return moment, nil
}
