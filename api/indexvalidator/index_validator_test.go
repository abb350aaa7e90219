package indexvalidator_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/tablescaler/tablescaler/api/indexvalidator"
	"github.com/tablescaler/tablescaler/models"
)

var _ = Describe("IndexValidator", func() {
	var (
		validator *indexvalidator.IndexValidator
		index     models.Index
		body      string
		conf      *models.IndexScalingConfig
		errs      indexvalidator.ValidationErrors
	)

	BeforeEach(func() {
		validator = indexvalidator.NewIndexValidator()
		index = models.NewIndex("orders", "")
	})

	JustBeforeEach(func() {
		conf, errs = validator.ParseAndValidate([]byte(body), index)
	})

	Context("when the body is empty json", func() {
		BeforeEach(func() {
			body = `{}`
		})

		It("returns the default config for the index", func() {
			Expect(errs).To(BeEmpty())
			Expect(*conf).To(Equal(models.NewIndexScalingConfig(index)))
		})
	})

	Context("when the body overrides some settings", func() {
		BeforeEach(func() {
			index = models.NewIndex("orders", "by-customer")
			body = `{"table_name":"orders","gsi_name":"by-customer","min_read":10,"max_read":500,"enable_downscale":false,"upscale_percent":0.9}`
		})

		It("merges them with the defaults", func() {
			Expect(errs).To(BeEmpty())
			expected := models.NewIndexScalingConfig(index)
			expected.MinRead = 10
			expected.MaxRead = 500
			expected.EnableDownscale = false
			expected.UpscalePercent = 0.9
			Expect(*conf).To(Equal(expected))
		})
	})

	Context("when the body is not json", func() {
		BeforeEach(func() {
			body = `{"min_read":`
		})

		It("fails at the root", func() {
			Expect(conf).To(BeNil())
			Expect(errs).To(HaveLen(1))
			Expect(errs[0].Context).To(Equal("(root)"))
		})
	})

	Context("when a field has the wrong type", func() {
		BeforeEach(func() {
			body = `{"min_read":"ten"}`
		})

		It("reports the schema violation", func() {
			Expect(conf).To(BeNil())
			Expect(errs).To(ConsistOf(models.ValidationError{
				Context:     "(root).min_read",
				Description: "Invalid type. Expected: integer, given: string",
			}))
		})
	})

	Context("when a percentage is out of range", func() {
		BeforeEach(func() {
			body = `{"upscale_percent":1.5,"scale_down_factor":-0.1}`
		})

		It("reports every violation", func() {
			Expect(conf).To(BeNil())
			Expect(errs).To(HaveLen(2))
			Expect(errs.Error()).To(ContainSubstring("(root).upscale_percent"))
			Expect(errs.Error()).To(ContainSubstring("(root).scale_down_factor"))
		})
	})

	Context("when the body has an unknown field", func() {
		BeforeEach(func() {
			body = `{"min_reads":10}`
		})

		It("is rejected", func() {
			Expect(conf).To(BeNil())
			Expect(errs).To(ConsistOf(models.ValidationError{
				Context:     "(root)",
				Description: "Additional property min_reads is not allowed",
			}))
		})
	})

	Context("when the table name does not match the path", func() {
		BeforeEach(func() {
			body = `{"table_name":"invoices"}`
		})

		It("is rejected", func() {
			Expect(conf).To(BeNil())
			Expect(errs).To(ConsistOf(models.ValidationError{
				Context:     "(root).table_name",
				Description: "table_name invoices does not match orders from the request path",
			}))
		})
	})

	Context("when a gsi name is given for a table path", func() {
		BeforeEach(func() {
			body = `{"gsi_name":"by-customer"}`
		})

		It("is rejected", func() {
			Expect(conf).To(BeNil())
			Expect(errs).To(HaveLen(1))
			Expect(errs[0].Context).To(Equal("(root).gsi_name"))
		})
	})

	Context("when min is greater than max", func() {
		BeforeEach(func() {
			body = `{"min_write":100,"max_write":10}`
		})

		It("reports the scaling config error", func() {
			Expect(conf).To(BeNil())
			Expect(errs).To(ConsistOf(models.ValidationError{
				Context:     "(root)",
				Description: "invalid index scaling config: orders: min_write 100 is greater than max_write 10",
			}))
		})
	})
})
