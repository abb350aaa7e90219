package models_test

import (
	"encoding/json"

	. "github.com/tablescaler/tablescaler/models"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gopkg.in/yaml.v2"
)

var _ = Describe("IndexScalingConfig", func() {
	var (
		conf IndexScalingConfig
		err  error
	)

	Describe("NewIndexScalingConfig", func() {
		It("returns the default bounds and thresholds", func() {
			conf = NewIndexScalingConfig(NewIndex("test", ""))
			Expect(conf).To(Equal(IndexScalingConfig{
				Index:                Index{TableName: "test"},
				MinRead:              5,
				MaxRead:              50,
				MinWrite:             5,
				MaxWrite:             50,
				EnableUpscale:        true,
				EnableDownscale:      true,
				UpscalePercent:       0.85,
				DownscalePercent:     0.15,
				ScaleUpFactor:        0.5,
				ScaleDownFactor:      0.8,
				DownscaleWaitMinutes: 60,
			}))
		})
	})

	Describe("Index", func() {
		It("is the primary index when no gsi name is set", func() {
			Expect(NewIndex("test", "").IsGSI()).To(BeFalse())
			Expect(NewIndex("test", "").String()).To(Equal("test"))
		})

		It("is a global secondary index when a gsi name is set", func() {
			Expect(NewIndex("test", "by-user").IsGSI()).To(BeTrue())
			Expect(NewIndex("test", "by-user").String()).To(Equal("test:by-user"))
		})

		It("can be used as a map key", func() {
			m := map[Index]int{NewIndex("test", "gsi"): 1}
			Expect(m).To(HaveKeyWithValue(Index{TableName: "test", GSIName: "gsi"}, 1))
			Expect(m).NotTo(HaveKey(NewIndex("test", "")))
		})
	})

	Describe("UnmarshalYAML", func() {
		JustBeforeEach(func() {
			conf = IndexScalingConfig{}
		})

		It("keeps defaults for omitted fields", func() {
			err = yaml.Unmarshal([]byte(`
table_name: orders
gsi_name: by-customer
max_read: 200
enable_downscale: false
`), &conf)
			Expect(err).NotTo(HaveOccurred())
			expected := NewIndexScalingConfig(NewIndex("orders", "by-customer"))
			expected.MaxRead = 200
			expected.EnableDownscale = false
			Expect(conf).To(Equal(expected))
		})

		It("fails on malformed input", func() {
			err = yaml.Unmarshal([]byte(`max_read: [1]`), &conf)
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("UnmarshalJSON", func() {
		It("keeps defaults for omitted fields", func() {
			conf = IndexScalingConfig{}
			err = json.Unmarshal([]byte(`{"table_name":"orders","min_write":1,"upscale_percent":0.7}`), &conf)
			Expect(err).NotTo(HaveOccurred())
			expected := NewIndexScalingConfig(NewIndex("orders", ""))
			expected.MinWrite = 1
			expected.UpscalePercent = 0.7
			Expect(conf).To(Equal(expected))
		})
	})

	Describe("Validate", func() {
		BeforeEach(func() {
			conf = NewIndexScalingConfig(NewIndex("test", ""))
		})

		JustBeforeEach(func() {
			err = conf.Validate()
		})

		Context("with the defaults", func() {
			It("succeeds", func() {
				Expect(err).NotTo(HaveOccurred())
			})
		})

		Context("when min equals max", func() {
			BeforeEach(func() {
				conf.MinRead = 10
				conf.MaxRead = 10
			})
			It("succeeds", func() {
				Expect(err).NotTo(HaveOccurred())
			})
		})

		Context("when the table name is empty", func() {
			BeforeEach(func() {
				conf.TableName = ""
			})
			It("fails", func() {
				Expect(err).To(MatchError(ContainSubstring("table_name is empty")))
				Expect(err).To(MatchError(ErrInvalidScalingConfig))
			})
		})

		Context("when min_read is greater than max_read", func() {
			BeforeEach(func() {
				conf.MinRead = 51
			})
			It("fails", func() {
				Expect(err).To(MatchError("invalid index scaling config: test: min_read 51 is greater than max_read 50"))
			})
		})

		Context("when min_write is greater than max_write", func() {
			BeforeEach(func() {
				conf.MaxWrite = 4
			})
			It("fails", func() {
				Expect(err).To(MatchError("invalid index scaling config: test: min_write 5 is greater than max_write 4"))
			})
		})

		DescribeTable("minimum capacities",
			func(mutate func(*IndexScalingConfig)) {
				mutate(&conf)
				Expect(conf.Validate()).To(MatchError("invalid index scaling config: test: min_read and min_write must be at least 1"))
			},
			Entry("negative min_write", func(c *IndexScalingConfig) { c.MinWrite = -1 }),
			Entry("zero min_read", func(c *IndexScalingConfig) { c.MinRead = 0 }),
			Entry("zero min_write", func(c *IndexScalingConfig) { c.MinWrite = 0 }),
		)

		DescribeTable("thresholds and factors",
			func(mutate func(*IndexScalingConfig), message string) {
				mutate(&conf)
				Expect(conf.Validate()).To(MatchError(ContainSubstring(message)))
			},
			Entry("upscale_percent above 1", func(c *IndexScalingConfig) { c.UpscalePercent = 1.5 }, "upscale_percent"),
			Entry("downscale_percent below 0", func(c *IndexScalingConfig) { c.DownscalePercent = -0.1 }, "downscale_percent"),
			Entry("negative scale_up_factor", func(c *IndexScalingConfig) { c.ScaleUpFactor = -1 }, "scale_up_factor"),
			Entry("scale_down_factor above 1", func(c *IndexScalingConfig) { c.ScaleDownFactor = 1.2 }, "scale_down_factor"),
			Entry("negative downscale_wait_minutes", func(c *IndexScalingConfig) { c.DownscaleWaitMinutes = -5 }, "downscale_wait_minutes"),
		)
	})
})
