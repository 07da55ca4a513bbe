package main

import (
	"flag"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/yunginnanet/ftdi-spot/pkg/ft232h"
	"github.com/yunginnanet/ftdi-spot/pkg/spot"
)

var log zerolog.Logger

func init() {
	cw := zerolog.ConsoleWriter{Out: os.Stdout}
	log = zerolog.New(cw).With().Timestamp().Logger()
}

func flags() (ftindex int, cs uint, rdy uint, clock uint, fullscale float64, samples int) {
	fti := flag.Int("FT232H", 0, "FT232H Index")
	csi := flag.Uint("CS", 0x10, "Chip Select (GPIO)")
	rdi := flag.Uint("RDY", 0x01, "Data Ready (GPIO)")
	clk := flag.Uint("clock", spot.DefaultClock, "SPI clock rate in Hz")
	fsc := flag.Float64("fullscale", 0, "fullscale pressure (0 = take it from the sensor's label)")
	smp := flag.Int("samples", 10, "number of pressure/temperature samples to read")
	flag.Parse()
	return *fti, *csi, *rdi, *clk, *fsc, *smp
}

// fullscaleFromLabel pulls the numeric part out of a fullscale label
// like "1000 mbar".
func fullscaleFromLabel(label string) (float64, bool) {
	fields := strings.Fields(label)
	if len(fields) == 0 {
		return 0, false
	}
	f, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func main() {
	ftindex, cs, rdy, clock, fullscale, samples := flags()

	spi, err := ft232h.Connect(ft232h.ByIndex(ftindex))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to FT232H")
	}

	log.Info().Any("info", spi.Info()).
		Msgf("connected to FT232H: %s", spi)

	log.Debug().Uint("cs", cs).Uint("rdy", rdy).Uint("clock", clock).Msg("initializing SPI")
	if err = spi.Configure(cs, rdy, uint32(clock)); err != nil {
		log.Fatal().Err(err).Msg("failed to initialize SPI")
	}

	sensor := spot.NewSpot(spi)

	cfg := spot.DefaultConfig()
	cfg.Fullscale = fullscale

	log.Debug().Any("config", cfg).Msg("initializing Spot")
	if err = sensor.Initialize(cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to initialize Spot")
	}

	product, err := sensor.ReadProductNo()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to read product number")
	}
	serial, _ := sensor.ReadSerialNo()
	typ, _ := sensor.ReadType()
	speed, _ := sensor.ReadSpeed()
	fs1, _ := sensor.ReadFullscale1()
	fs2, _ := sensor.ReadFullscale2()

	log.Info().
		Str("product", product).
		Str("serial", serial).
		Str("type", typ).
		Str("speed", speed).
		Str("fullscale1", fs1).
		Str("fullscale2", fs2).
		Msg("sensor labels")

	sramCrc, err := sensor.ReadSramCrc()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to read SRAM CRC")
	}
	otpCrc, err := sensor.ReadOtpCrc()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to read OTP CRC")
	}
	log.Info().
		Str("sram", "0x"+strconv.FormatUint(uint64(sramCrc), 16)).
		Str("otp", "0x"+strconv.FormatUint(uint64(otpCrc), 16)).
		Msg("sensor CRCs")

	if sensor.Fullscale() == 0 {
		if f, ok := fullscaleFromLabel(fs1); ok {
			sensor.SetFullscale(f)
			log.Info().Float64("fullscale", f).Msg("fullscale taken from sensor label")
		} else {
			log.Warn().Msg("no fullscale set and none on the sensor label; pressure will read 0")
		}
	}

	for i := 0; i < samples; i++ {
		if err = spi.WaitReady(); err != nil {
			log.Fatal().Err(err).Msg("failed waiting for the ready line")
		}

		rawP, err := sensor.ReadRegister(spot.RegPressure1)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to read pressure register")
		}
		rawT, err := sensor.ReadRegister(spot.RegTemperature)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to read temperature register")
		}

		log.Info().
			Float64("pressure", sensor.ConvertPressure(rawP)).
			Float64("temperature", sensor.ConvertTemperature(rawT)).
			Uint32("rawPressure", rawP).
			Uint32("rawTemperature", rawT).
			Msg("sample")

		time.Sleep(100 * time.Millisecond)
	}

	if err = sensor.Close(); err != nil {
		log.Fatal().Err(err).Msg("failed to close Spot")
	}

	log.Info().Msg("closed Spot")
}
